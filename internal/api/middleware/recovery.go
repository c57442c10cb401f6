package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pitwall/pitgames/internal/api/apierr"
	"github.com/pitwall/pitgames/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// Returns JSON error responses on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, errInternal)
}

// errInternal deliberately matches no sentinel so it maps to a 500
var errInternal = &internalError{}

type internalError struct{}

func (e *internalError) Error() string {
	return "internal server error"
}
