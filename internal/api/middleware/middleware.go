package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/blockgame-go/internal/api/apierr"
	"github.com/mcoot/blockgame-go/internal/middleware"
)

// MaxBodyBytes bounds score submissions; a summary is a few hundred bytes
const MaxBodyBytes = 4 << 10

// Recovery turns handler panics into a JSON INTERNAL_ERROR response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// Logging logs each API request
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// LimitBody rejects request bodies larger than MaxBodyBytes
func LimitBody() func(http.Handler) http.Handler {
	return middleware.LimitBody(MaxBodyBytes)
}
