package endpoints

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the whole happy path: register, log in, upload with a custom slug,
// then resolve the original through /i/{slug}.
func TestRegisterLoginUploadResolveScenario(t *testing.T) {
	srv, mock := newTestServer(t)

	// Register
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("alice", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, postForm("/register", url.Values{
		"username": {"alice"},
		"password": {"secret"},
	}))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	// Login
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(userRows(t, 1, "alice", "secret"))

	login := httptest.NewRecorder()
	srv.Router.ServeHTTP(login, postForm("/login", url.Values{
		"username": {"alice"},
		"password": {"secret"},
	}))
	require.Equal(t, http.StatusFound, login.Code)
	require.Equal(t, "/", login.Header().Get("Location"))

	// Upload with a custom slug
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WithArgs(1).
		WillReturnRows(userRows(t, 1, "alice", "secret"))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM images WHERE slug = \$1\)`).
		WithArgs("sunset").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "images"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "sunset", sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	body, contentType := pngUpload(t, "sunset.png", map[string]string{"custom_slug": "sunset"})
	upload := httptest.NewRequest("POST", "/upload", body)
	upload.Header.Set("Content-Type", contentType)
	carryCookies(upload, login)

	w = httptest.NewRecorder()
	srv.Router.ServeHTTP(w, upload)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/image/7", w.Header().Get("Location"))

	// The pipeline picked the storage name; recover it from disk.
	entries, err := os.ReadDir(srv.Files().Dir())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var storedName string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "thumb-") {
			storedName = entry.Name()
		}
	}
	require.NotEmpty(t, storedName)

	// Resolve through the custom slug
	rows := sqlmock.NewRows([]string{"id", "filename", "thumbnail", "slug", "uploaded_at", "user_id"}).
		AddRow(7, storedName, "thumb-"+storedName, "sunset", time.Now(), 1)
	mock.ExpectQuery(`SELECT \* FROM "images" WHERE slug = \$1`).
		WithArgs("sunset").
		WillReturnRows(rows)

	w = httptest.NewRecorder()
	srv.Router.ServeHTTP(w, httptest.NewRequest("GET", "/i/sunset", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, w.Body.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}
