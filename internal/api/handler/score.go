package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/blockgame-go/internal/api/request"
	"github.com/mcoot/blockgame-go/internal/api/response"
	"github.com/mcoot/blockgame-go/internal/dependencies/clock"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/leaderboard"
)

// ScoreHandler handles high-score endpoints
type ScoreHandler struct {
	leaderboard leaderboard.ServiceInterface
	clock       clock.Clock
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(leaderboard leaderboard.ServiceInterface, clock clock.Clock) *ScoreHandler {
	return &ScoreHandler{
		leaderboard: leaderboard,
		clock:       clock,
	}
}

// List handles GET /api/v1/scores
func (h *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := request.ParseScoreQuery(r)
	if err != nil {
		if errors.Is(err, model.ErrInvalidMode) {
			WriteError(w, err)
			return
		}
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	records, err := h.leaderboard.Top(r.Context(), query.Mode, query.Limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.ScoreListFromModel(query.Mode, records))
}

// Get handles GET /api/v1/scores/{id}
func (h *ScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.ScoreID(mux.Vars(r)["id"])

	record, err := h.leaderboard.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.ScoreFromModel(record))
}

// Delete handles DELETE /api/v1/scores/{id}
func (h *ScoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ScoreID(mux.Vars(r)["id"])

	if err := h.leaderboard.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Submit handles POST /api/v1/scores
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	summary, err := req.Summary(h.clock.Now())
	if err != nil {
		WriteError(w, err)
		return
	}

	record, err := h.leaderboard.Record(r.Context(), req.Player, summary)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/scores/"+url.PathEscape(string(record.ID)), response.ScoreFromModel(record))
}

// Health handles GET /api/v1/health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.Health{Status: "ok"})
}
