package web

import (
	"net/http"

	"github.com/JonMunkholm/storefront/internal/core"
)

// handleUpdateCatalogItem applies a partial JSON update to a catalog item.
// Sending {"isAvailable": false} hides the item from listings.
func (s *Server) handleUpdateCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	var update core.CatalogItemUpdate
	if status, err := s.decodeJSON(w, r, &update); err != nil {
		respondError(w, r, err, status)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	item, err := s.service.UpdateCatalogItem(ctx, id, update)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, r, http.StatusOK, item)
}

// handleDeleteCatalogItem removes a catalog item for good.
func (s *Server) handleDeleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	if err := s.service.DeleteCatalogItem(ctx, id); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
