package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/JonMunkholm/storefront/internal/web/templates"
)

const healthTimeout = 2 * time.Second

// handleIndex sends visitors to the first registration step.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, core.FormPath, http.StatusFound)
}

// handleHealth reports whether the database is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.service.Ping(ctx); err != nil {
		logging.FromContext(ctx).Error("health check failed", "error", err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleShopForm renders the empty shop form.
func (s *Server) handleShopForm(w http.ResponseWriter, r *http.Request) {
	s.renderShopForm(w, r, http.StatusOK, templates.ShopFormData{})
}

// handleShopSubmit validates and stores the shop, then starts the
// registration session and redirects to the industry's catalog step.
func (s *Server) handleShopSubmit(w http.ResponseWriter, r *http.Request) {
	if status, err := s.parseForm(w, r); err != nil {
		respondError(w, r, err, status)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	store, err := s.service.RegisterStore(ctx, r.PostForm)
	if err != nil {
		status := statusFor(err)
		msg := userMessage(err)
		logRequestError(r, err, status, msg.Code)

		var verrs core.ValidationErrors
		errors.As(err, &verrs)
		s.renderShopForm(w, r, status, templates.ShopFormData{
			Values: r.PostForm,
			Errors: verrs,
			Alert:  &msg,
		})
		return
	}

	if err := s.sessions.Begin(w, r, store.ID); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, core.NextStepPath(store.Industry), http.StatusSeeOther)
}

func (s *Server) renderShopForm(w http.ResponseWriter, r *http.Request, status int, data templates.ShopFormData) {
	data.Industries = s.service.ListIndustries()
	render(w, r, status, templates.ShopForm(data))
}

// handleComplete renders the fixed completion page.
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, templates.Complete())
}
