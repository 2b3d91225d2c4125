// Package session is the session authority: it binds a browser to an
// authenticated user via a signed cookie and carries one-shot flash messages
// between redirects.
//
// Only the user ID is stored in the cookie. Handlers re-fetch the user record
// per request, so a session can never serve stale account data.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// CookieName is the name of the session cookie.
const CookieName = "pixelbin_session"

const userIDKey = "user_id"

// Manager issues and validates session cookies.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a session manager. The signing key comes from
// configuration; it must never be compiled in.
func NewManager(signingKey []byte) *Manager {
	store := sessions.NewCookieStore(signingKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// get returns the request's session. A missing or tampered cookie yields a
// fresh anonymous session; the decode error is deliberately not surfaced.
func (m *Manager) get(r *http.Request) *sessions.Session {
	s, _ := m.store.Get(r, CookieName)
	return s
}

// Establish binds the session to a user ID after successful authentication.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, userID uint) error {
	s := m.get(r)
	s.Values[userIDKey] = userID
	return s.Save(r, w)
}

// Clear destroys the session unconditionally.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	delete(s.Values, userIDKey)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// UserID returns the authenticated user ID bound to the request's session.
func (m *Manager) UserID(r *http.Request) (uint, bool) {
	s := m.get(r)
	id, ok := s.Values[userIDKey].(uint)
	return id, ok
}

// Flash queues a one-shot message for the next request that reads flashes.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) {
	s := m.get(r)
	s.AddFlash(message)
	_ = s.Save(r, w)
}

// Flashes drains and returns the queued flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	s := m.get(r)
	raw := s.Flashes()
	if len(raw) > 0 {
		// Reading flashes mutates the session; persist the drain.
		_ = s.Save(r, w)
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
