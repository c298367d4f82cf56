package web

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/storefront/internal/config"
	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/gorilla/sessions"
)

const (
	sessionName       = "registration"
	sessionKeyStoreID = "store_id"
)

// registrationSessions carries the store created by the shop step to the
// catalog step in a signed cookie scoped to the form paths.
type registrationSessions struct {
	store *sessions.CookieStore
}

func newRegistrationSessions(cfg config.SessionConfig) *registrationSessions {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     core.FormPath,
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(cfg.MaxAge.Seconds()))
	return &registrationSessions{store: store}
}

// StoreID returns the store id of the registration in progress, or
// core.ErrNoSession when there is none or the cookie does not verify.
func (rs *registrationSessions) StoreID(r *http.Request) (int64, error) {
	session, err := rs.store.Get(r, sessionName)
	if err != nil {
		return 0, errors.Join(core.ErrNoSession, err)
	}
	id, ok := session.Values[sessionKeyStoreID].(int64)
	if !ok || id <= 0 {
		return 0, core.ErrNoSession
	}
	return id, nil
}

// Begin starts a registration for storeID.
func (rs *registrationSessions) Begin(w http.ResponseWriter, r *http.Request, storeID int64) error {
	// A stale or tampered cookie still yields a usable new session.
	session, _ := rs.store.Get(r, sessionName)
	session.Values[sessionKeyStoreID] = storeID
	return session.Save(r, w)
}

// End expires the registration cookie.
func (rs *registrationSessions) End(w http.ResponseWriter, r *http.Request) error {
	session, _ := rs.store.Get(r, sessionName)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
