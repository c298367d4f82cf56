package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details and the request ID (server-side)
//   - Returned to clients as user-friendly messages with action suggestions
//   - Formatted for the client: HTMX fragment, JSON, or a full HTML page
//
// Form handlers that re-render their own page with a banner use
// userMessage and logRequestError directly instead of respondError.

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/JonMunkholm/storefront/internal/web/templates"
)

var (
	errRateLimited = errors.New("rate limit exceeded")
	errBadID       = errors.New("invalid format: id must be a positive integer")
	errBodyTooBig  = errors.New("request body too large")
	errBadForm     = errors.New("invalid format: form body could not be parsed")
	errBadJSON     = errors.New("invalid format: request body is not a valid JSON object")

	// errUnknownIndustry is returned for a catalog path with no registered
	// industry. The tag stays out of the error text; the logged path carries it.
	errUnknownIndustry = errors.New("unknown industry")
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Action  string                 `json:"action,omitempty"`
	Code    string                 `json:"code"`
	Fields  []core.ValidationError `json:"fields,omitempty"`
}

// statusFor picks the HTTP status for an error returned by the service.
func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &maxErr), errors.Is(err, errBodyTooBig):
		return http.StatusRequestEntityTooLarge
	case core.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrTooManyBatches):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps err for display. A *core.UserError already carries its
// message.
func userMessage(err error) core.UserMessage {
	var uerr *core.UserError
	if errors.As(err, &uerr) {
		return uerr.User
	}
	return core.MapError(err)
}

// logRequestError logs the technical error with request context.
// Client errors log at warn, server errors at error.
func logRequestError(r *http.Request, err error, status int, code string) {
	log := logging.FromContext(r.Context())
	args := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", code,
	}
	if status >= http.StatusInternalServerError {
		log.Error("request error", args...)
	} else {
		log.Warn("request error", args...)
	}
}

// respondError handles error responses with user-friendly messages.
// It logs the technical error server-side and returns an appropriate response
// based on the request type (HTMX, JSON, or HTML).
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	msg := userMessage(err)
	logRequestError(r, err, statusCode, msg.Code)

	switch {
	case isHTMX(r):
		renderErrorPartial(w, r, msg, statusCode)
	case wantsJSON(r):
		var verrs core.ValidationErrors
		errors.As(err, &verrs)
		respondErrorJSON(w, msg, verrs, statusCode)
	default:
		respondErrorHTML(w, r, msg, statusCode)
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg core.UserMessage, fields core.ValidationErrors, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
		Fields:  fields,
	})
}

// respondErrorHTML writes a full error page.
func respondErrorHTML(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.ErrorPage(msg.Message, msg.Action, msg.Code).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render error page failed", "error", err)
	}
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render error partial failed", "error", err)
	}
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
