package web

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/storefront/internal/core"
	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/JonMunkholm/storefront/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// handleCatalogForm renders the catalog step for the store in the session.
func (s *Server) handleCatalogForm(w http.ResponseWriter, r *http.Request) {
	def, store, ok := s.catalogStep(w, r)
	if !ok {
		return
	}
	s.renderCatalogForm(w, r, http.StatusOK, templates.CatalogFormData{
		Industry: def,
		ShopName: store.ShopName,
	})
}

// handleCatalogSubmit saves the posted menuData rows in one batch. Any
// failure re-renders the form with the rows the user entered.
func (s *Server) handleCatalogSubmit(w http.ResponseWriter, r *http.Request) {
	def, store, ok := s.catalogStep(w, r)
	if !ok {
		return
	}
	if status, err := s.parseForm(w, r); err != nil {
		respondError(w, r, err, status)
		return
	}

	menuData := r.PostForm.Get(core.FieldMenuData)
	ctx := WithRequestMetadata(r.Context(), r)

	batch, err := s.service.SaveCatalog(ctx, store.ID, menuData)
	if err != nil {
		if errors.Is(err, core.ErrNoSession) {
			s.restart(w, r)
			return
		}

		status := statusFor(err)
		msg := userMessage(err)
		logRequestError(r, err, status, msg.Code)

		var verrs core.ValidationErrors
		errors.As(err, &verrs)
		s.renderCatalogForm(w, r, status, templates.CatalogFormData{
			Industry: def,
			ShopName: store.ShopName,
			MenuData: menuData,
			Errors:   verrs,
			Alert:    &msg,
		})
		return
	}

	if err := s.sessions.End(w, r); err != nil {
		logging.FromContext(ctx).Warn("end registration session failed", "error", err)
	}
	logging.FromContext(ctx).Info("registration complete",
		"store_id", store.ID,
		"batch_id", batch.BatchID,
		"rows", len(batch.Items),
	)
	http.Redirect(w, r, core.CompletePath, http.StatusSeeOther)
}

// catalogStep resolves the registration behind a catalog request. When the
// request cannot proceed it writes the redirect or error itself and
// returns false: no session goes back to the shop form, and a store whose
// industry differs from the URL goes to its own catalog step.
func (s *Server) catalogStep(w http.ResponseWriter, r *http.Request) (core.IndustryDefinition, db.Store, bool) {
	tag := chi.URLParam(r, "industry")
	if _, ok := core.Get(tag); !ok {
		respondError(w, r, errUnknownIndustry, http.StatusNotFound)
		return core.IndustryDefinition{}, db.Store{}, false
	}

	storeID, err := s.sessions.StoreID(r)
	if err != nil {
		http.Redirect(w, r, core.FormPath, http.StatusSeeOther)
		return core.IndustryDefinition{}, db.Store{}, false
	}

	store, err := s.service.GetStore(r.Context(), storeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.restart(w, r)
		} else {
			respondError(w, r, err, http.StatusInternalServerError)
		}
		return core.IndustryDefinition{}, db.Store{}, false
	}

	def := core.IndustryFor(store.Industry)
	if def.Tag != tag {
		http.Redirect(w, r, def.FormPath, http.StatusSeeOther)
		return core.IndustryDefinition{}, db.Store{}, false
	}
	return def, store, true
}

// restart drops a session whose store is gone and returns to the shop form.
func (s *Server) restart(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.End(w, r); err != nil {
		logging.FromContext(r.Context()).Warn("end registration session failed", "error", err)
	}
	http.Redirect(w, r, core.FormPath, http.StatusSeeOther)
}

func (s *Server) renderCatalogForm(w http.ResponseWriter, r *http.Request, status int, data templates.CatalogFormData) {
	data.MaxItems = s.service.MaxCatalogItems()
	render(w, r, status, templates.CatalogForm(data))
}
