package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mcoot/blockgame-go/internal/api/response"
	"github.com/mcoot/blockgame-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGameResult(v)
	case response.Score:
		o.printScore(v)
	case response.ScoreList:
		o.printScoreList(v)
	case response.Health:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

// GameResult is what play reports once a game is over
type GameResult struct {
	Player       string `json:"player"`
	Mode         string `json:"mode"`
	Score        int    `json:"score"`
	Level        int    `json:"level"`
	LinesCleared int    `json:"lines_cleared"`
	PiecesPlaced int    `json:"pieces_placed"`
	DurationMs   int64  `json:"duration_ms"`
	Finished     bool   `json:"finished"`
	RecordID     string `json:"record_id,omitempty"`
	SubmittedID  string `json:"submitted_id,omitempty"`
}

// NewGameResult builds a result from a game's summary
func NewGameResult(player string, summary model.GameSummary, finished bool) GameResult {
	return GameResult{
		Player:       player,
		Mode:         string(summary.Mode),
		Score:        summary.Score,
		Level:        summary.Level,
		LinesCleared: summary.LinesCleared,
		PiecesPlaced: summary.PiecesPlaced,
		DurationMs:   summary.Duration().Milliseconds(),
		Finished:     finished,
	}
}

func (o *Output) printGameResult(r GameResult) {
	if !r.Finished {
		_, _ = fmt.Fprintln(o.w, "Game abandoned")
	} else {
		_, _ = fmt.Fprintln(o.w, "Game over")
	}
	_, _ = fmt.Fprintf(o.w, "Mode: %s\n", r.Mode)
	_, _ = fmt.Fprintf(o.w, "Score: %d\n", r.Score)
	_, _ = fmt.Fprintf(o.w, "Level: %d\n", r.Level)
	_, _ = fmt.Fprintf(o.w, "Lines: %d\n", r.LinesCleared)
	_, _ = fmt.Fprintf(o.w, "Pieces: %d\n", r.PiecesPlaced)
	_, _ = fmt.Fprintf(o.w, "Time: %s\n", formatMillis(r.DurationMs))
	if r.RecordID != "" {
		_, _ = fmt.Fprintf(o.w, "Recorded: %s\n", r.RecordID)
	}
	if r.SubmittedID != "" {
		_, _ = fmt.Fprintf(o.w, "Submitted: %s\n", r.SubmittedID)
	}
}

func (o *Output) printScore(s response.Score) {
	_, _ = fmt.Fprintf(o.w, "Score: %s\n", s.ID)
	_, _ = fmt.Fprintf(o.w, "Player: %s\n", s.Player)
	_, _ = fmt.Fprintf(o.w, "Mode: %s\n", s.Mode)
	_, _ = fmt.Fprintf(o.w, "Points: %d\n", s.Score)
	_, _ = fmt.Fprintf(o.w, "Level: %d\n", s.Level)
	_, _ = fmt.Fprintf(o.w, "Lines: %d\n", s.LinesCleared)
	_, _ = fmt.Fprintf(o.w, "Time: %s\n", formatMillis(s.DurationMs))
	_, _ = fmt.Fprintf(o.w, "Completed: %s\n", s.CompletedAt.Format(time.RFC3339))
}

func (o *Output) printScoreList(l response.ScoreList) {
	if len(l.Scores) == 0 {
		_, _ = fmt.Fprintf(o.w, "No %s scores yet\n", l.Mode)
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tPLAYER\tSCORE\tLEVEL\tLINES\tID")
	for i, s := range l.Scores {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n", i+1, s.Player, s.Score, s.Level, s.LinesCleared, s.ID)
	}
	_ = tw.Flush()
}

func formatMillis(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Round(time.Second / 10).String()
}
