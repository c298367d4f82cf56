package web

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/storefront/internal/web/templates"
)

// handleListing renders every store and available catalog item. A section
// that fails to load renders empty under a warning banner.
func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	listing := s.service.Listing(r.Context())

	data := templates.ListingData{Listing: listing}
	if len(listing.Errors) > 0 {
		msg := userMessage(errors.Join(listing.Errors...))
		data.Warning = "Some registrations could not be loaded: " + msg.Message + " (Code: " + msg.Code + ")"
	}
	render(w, r, http.StatusOK, templates.Listing(data))
}
