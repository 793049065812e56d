package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orderdesk/apiserver/internal/audit"
	"github.com/orderdesk/apiserver/internal/services"
	"github.com/rs/zerolog"
)

// ErrorResponse is a simple error payload for malformed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// apiFunc is a handler that reports its failure instead of writing it,
// so the responder can apply the error and success rules uniformly.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

// Responder wraps handlers with the request-layer rules: every error
// escaping a handler is logged with the method name and message;
// domain errors become a 404 whose body is the bare message string;
// anything else surfaces as a plain 500. Success logging and audit
// publication run only after a handler returns cleanly.
type Responder struct {
	log   zerolog.Logger
	audit *audit.Recorder
}

func NewResponder(log zerolog.Logger, recorder *audit.Recorder) *Responder {
	return &Responder{log: log, audit: recorder}
}

// Handle applies error translation and success logging to fn.
func (rs *Responder) Handle(name string, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			rs.fail(w, r, name, err)
			return
		}
		rs.logSuccess(r, name)
	}
}

// HandleAudited additionally records an audit event after success.
func (rs *Responder) HandleAudited(name, entity, action string, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			rs.fail(w, r, name, err)
			return
		}
		rs.logSuccess(r, name)
		rs.audit.Record(r.Context(), audit.Event{
			Entity: entity,
			Action: action,
			Method: name,
			Path:   r.URL.Path,
		})
	}
}

func (rs *Responder) logSuccess(r *http.Request, name string) {
	rs.log.Info().
		Str("method", name).
		Str("path", r.URL.Path).
		Msg("handler completed successfully")
}

func (rs *Responder) fail(w http.ResponseWriter, r *http.Request, name string, err error) {
	rs.log.Error().
		Str("method", name).
		Str("path", r.URL.Path).
		Str("error", err.Error()).
		Msg("handler failed")

	if message, ok := domainMessage(err); ok {
		writeText(w, http.StatusNotFound, message)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// domainMessage reports whether err is one of the domain error kinds
// that translate to a 404 with the message as the response body.
func domainMessage(err error) (string, bool) {
	var userNotFound *services.UserNotFoundError
	var orderNotFound *services.OrderNotFoundError
	var invalidEmail *services.InvalidEmailError
	switch {
	case errors.As(err, &userNotFound),
		errors.As(err, &orderNotFound),
		errors.As(err, &invalidEmail):
		return err.Error(), true
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeText writes a bare string body. Domain errors and the deletion
// confirmation use this: the wire contract is plain text, not a JSON
// object.
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// Healthz is a trivial liveness endpoint.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
