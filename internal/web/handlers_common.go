package web

// handlers_common.go contains shared utilities used across handlers.

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// parseIDParam reads a positive int64 URL parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

// parseForm reads an urlencoded form body capped at the configured size.
// The returned status is meaningful only when err is non-nil.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Form.MaxBytes)
	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, errBodyTooBig
		}
		logging.FromContext(r.Context()).Warn("parse form body failed", "error", err)
		return http.StatusBadRequest, errBadForm
	}
	return 0, nil
}

// decodeJSON reads a JSON request body into v, rejecting unknown fields.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Form.MaxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, errBodyTooBig
		}
		logging.FromContext(r.Context()).Warn("decode request body failed", "error", err)
		return http.StatusBadRequest, errBadJSON
	}
	return 0, nil
}

// render writes a page with the given status.
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render failed", "path", r.URL.Path, "error", err)
	}
}

// writeJSON encodes v as JSON with the given status.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode failed", "error", err)
	}
}
