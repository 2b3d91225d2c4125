package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/model"
	"pixelbin/pkg/session"
)

type stubUsers struct {
	user *model.User
}

func (s *stubUsers) Create(username string, passwordHash []byte) (*model.User, error) {
	return nil, apperror.NewInternal("not implemented", nil)
}

func (s *stubUsers) ByUsername(username string) (*model.User, error) {
	return nil, apperror.NewNotFound("user not found", nil)
}

func (s *stubUsers) ByID(id uint) (*model.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, apperror.NewNotFound("user not found", nil)
	}
	return s.user, nil
}

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	return session.NewManager([]byte("0123456789abcdef0123456789abcdef"))
}

func TestSessionGate_RedirectsAnonymous(t *testing.T) {
	gate := NewSessionGate(newTestManager(t), &stubUsers{})

	called := false
	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/upload", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))
}

func TestSessionGate_PassesAuthenticated(t *testing.T) {
	manager := newTestManager(t)
	user := &model.User{ID: 7, Username: "alice"}
	gate := NewSessionGate(manager, &stubUsers{user: user})

	// Establish a session and carry its cookie into the gated request.
	recorder := httptest.NewRecorder()
	err := manager.Establish(recorder, httptest.NewRequest("GET", "/", nil), user.ID)
	assert.NoError(t, err)

	request := httptest.NewRequest("GET", "/upload", nil)
	for _, c := range recorder.Result().Cookies() {
		request.AddCookie(c)
	}

	var seen *model.User
	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFrom(r.Context())
	}))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Username)
}

func TestSessionGate_ClearsStaleSession(t *testing.T) {
	manager := newTestManager(t)
	gate := NewSessionGate(manager, &stubUsers{})

	recorder := httptest.NewRecorder()
	err := manager.Establish(recorder, httptest.NewRequest("GET", "/", nil), 42)
	assert.NoError(t, err)

	request := httptest.NewRequest("GET", "/upload", nil)
	for _, c := range recorder.Result().Cookies() {
		request.AddCookie(c)
	}

	called := false
	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	// The gate should have expired the dangling cookie.
	expired := false
	for _, c := range recorder.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired)
}
