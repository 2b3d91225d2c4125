// Package middleware provides the session gate protecting authenticated
// routes.
package middleware

import (
	"context"
	"net/http"

	"pixelbin/pkg/model"
	"pixelbin/pkg/server/store"
	"pixelbin/pkg/session"
)

type userKeyType struct{}

var userKey userKeyType

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated user placed in the context by the
// session gate.
func UserFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

// SessionGate is middleware that requires a valid session. The session holds
// only a user ID; the gate re-fetches the user record on every request so
// handlers never see stale account data.
type SessionGate struct {
	Sessions *session.Manager
	Users    store.UsersStore
}

// NewSessionGate creates a new session gate
func NewSessionGate(sessions *session.Manager, users store.UsersStore) *SessionGate {
	return &SessionGate{Sessions: sessions, Users: users}
}

// Middleware returns an HTTP middleware that redirects unauthenticated
// requests to the login page.
func (g *SessionGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := g.Sessions.UserID(r)
		if !ok {
			g.Sessions.Flash(w, r, "Please log in to continue.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		user, err := g.Users.ByID(id)
		if err != nil {
			// The session outlived its account; treat it as anonymous.
			_ = g.Sessions.Clear(w, r)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
