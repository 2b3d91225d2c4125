package endpoints

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"pixelbin/pkg/server"
)

// newTestServer builds a fully-registered server over a mocked database.
// Uploaded files land in a per-test temp directory.
func newTestServer(t *testing.T) (*server.Server, sqlmock.Sqlmock) {
	t.Helper()

	srv, mock, err := NewMockTestServer(t.TempDir())
	require.NoError(t, err)
	RegisterAll(srv)

	return srv, mock
}

// carryCookies copies the cookies set on a response onto a follow-up request,
// the way a browser would across a redirect.
func carryCookies(req *http.Request, from *httptest.ResponseRecorder) {
	for _, c := range from.Result().Cookies() {
		req.AddCookie(c)
	}
}

// flashesAt replays the session cookies against a form endpoint and returns
// the drained flash messages.
func flashesAt(t *testing.T, srv *server.Server, path string, from *httptest.ResponseRecorder) []string {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	carryCookies(req, from)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Messages
}

// pngUpload builds a multipart body holding a small real PNG under the
// "image" field, plus any extra form fields.
func pngUpload(t *testing.T, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 320, 200))))

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}
