package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wigac/wigac-backend/internal/adapter/mailer"
	"github.com/wigac/wigac-backend/internal/adapter/pgdump"
	"github.com/wigac/wigac-backend/internal/domain"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Responder maps service errors to HTTP responses. With detail enabled the
// error text of unexpected failures is returned to the client.
type Responder struct {
	log    *slog.Logger
	detail bool
}

// NewResponder creates a Responder.
func NewResponder(logger *slog.Logger, detail bool) *Responder {
	return &Responder{log: logger.With("component", "rest"), detail: detail}
}

func (rs *Responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation error")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, mailer.ErrDisabled):
		writeError(w, http.StatusServiceUnavailable, "email delivery is not configured")
	case errors.Is(err, pgdump.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "database dump timed out")
	default:
		rs.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		resp := errorResponse{Message: "internal server error"}
		if rs.detail {
			resp.Detail = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
