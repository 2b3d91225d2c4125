package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryEndpoint(t *testing.T) {
	t.Run("lists images newest first", func(t *testing.T) {
		srv, mock := newTestServer(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "filename", "thumbnail", "slug", "uploaded_at", "user_id"}).
			AddRow(2, "b.png", "thumb-b.png", nil, now, 1).
			AddRow(1, "a.png", "thumb-a.png", "mycat", now.Add(-time.Hour), 1)
		// Anchored: the gallery lists everything, so no LIMIT clause.
		mock.ExpectQuery(`SELECT \* FROM "images" ORDER BY uploaded_at DESC$`).
			WillReturnRows(rows)

		w := httptest.NewRecorder()
		srv.Router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Images []struct {
				ID           uint   `json:"id"`
				URL          string `json:"url"`
				ThumbnailURL string `json:"thumbnail_url"`
				PageURL      string `json:"page_url"`
				SlugURL      string `json:"slug_url"`
			} `json:"images"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Images, 2)
		assert.Equal(t, uint(2), body.Images[0].ID)
		assert.Equal(t, "/uploads/b.png", body.Images[0].URL)
		assert.Equal(t, "/uploads/thumb-b.png", body.Images[0].ThumbnailURL)
		assert.Equal(t, "/image/2", body.Images[0].PageURL)
		assert.Empty(t, body.Images[0].SlugURL)
		assert.Equal(t, "/i/mycat", body.Images[1].SlugURL)
	})

	t.Run("empty gallery is an empty list", func(t *testing.T) {
		srv, mock := newTestServer(t)

		mock.ExpectQuery(`SELECT \* FROM "images" ORDER BY uploaded_at DESC$`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "thumbnail", "slug", "uploaded_at", "user_id"}))

		w := httptest.NewRecorder()
		srv.Router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"images":[]`)
	})
}
