package web

import (
	"net/http"

	"github.com/JonMunkholm/storefront/internal/core"
)

// AuditLogResponse wraps the newest audit entries.
type AuditLogResponse struct {
	Entries []core.AuditEntry `json:"entries"`
	Count   int               `json:"count"`
	Limit   int               `json:"limit"`
}

// handleAuditLog returns the newest audit entries; ?limit= defaults to
// core.DefaultAuditLimit and is capped at core.MaxAuditLimit.
func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", core.DefaultAuditLimit)
	if limit > core.MaxAuditLimit {
		limit = core.MaxAuditLimit
	}

	entries, err := s.service.ListAudit(r.Context(), limit)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, AuditLogResponse{
		Entries: entries,
		Count:   len(entries),
		Limit:   limit,
	})
}
