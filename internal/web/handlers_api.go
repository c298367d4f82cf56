package web

// handlers_api.go serves the read-only JSON API.

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/storefront/internal/core"
)

// IndustryResponse describes one industry and the catalog fields it takes.
type IndustryResponse struct {
	Tag         string   `json:"tag"`
	Label       string   `json:"label"`
	CatalogNoun string   `json:"catalogNoun"`
	FormPath    string   `json:"formPath"`
	Fields      []string `json:"fields"`
}

func toIndustryResponse(def core.IndustryDefinition) IndustryResponse {
	fields := []string{"name", "price", "description"}
	if def.Capabilities.Has(core.CapCategory) {
		fields = append(fields, "category")
	}
	if def.Capabilities.Has(core.CapAllergyInfo) {
		fields = append(fields, "allergyInfo")
	}
	if def.Capabilities.Has(core.CapImage) {
		fields = append(fields, "imageUrl")
	}
	return IndustryResponse{
		Tag:         def.Tag,
		Label:       def.Label,
		CatalogNoun: def.CatalogNoun,
		FormPath:    def.FormPath,
		Fields:      fields,
	}
}

// handleListIndustries returns the registered industries in display order.
func (s *Server) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	defs := s.service.ListIndustries()
	resp := make([]IndustryResponse, len(defs))
	for i, def := range defs {
		resp[i] = toIndustryResponse(def)
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// handleListStores returns every store, newest first.
func (s *Server) handleListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := s.service.ListStores(r.Context())
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, stores)
}

// handleGetStore returns one store.
func (s *Server) handleGetStore(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	store, err := s.service.GetStore(r.Context(), id)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, r, http.StatusOK, store)
}

// handleListCatalog returns available catalog items, optionally filtered
// by ?industry= and ?store=.
func (s *Server) handleListCatalog(w http.ResponseWriter, r *http.Request) {
	filter := core.CatalogFilter{
		Industry: strings.TrimSpace(r.URL.Query().Get("industry")),
	}
	if raw := r.URL.Query().Get("store"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondError(w, r, err, http.StatusBadRequest)
			return
		}
		filter.StoreID = id
	}

	items, err := s.service.ListCatalog(r.Context(), filter)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

// handleGetCatalogItem returns one catalog item, available or not.
func (s *Server) handleGetCatalogItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	item, err := s.service.GetCatalogItem(r.Context(), id)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, r, http.StatusOK, item)
}
