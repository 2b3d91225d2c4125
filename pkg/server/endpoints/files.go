package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"pixelbin/pkg/server"
)

// RegisterFilesEndpoints registers the raw stored-file route on the server
func RegisterFilesEndpoints(s *server.Server) {
	// GET /uploads/{filename} - Raw stored bytes, originals and thumbnails
	s.Router.HandleFunc(
		"/uploads/{filename}",
		func(writer http.ResponseWriter, request *http.Request) {
			vars := mux.Vars(request)

			// Path rejects separators and dot-prefixed names, so a stored
			// name is the only thing that can be served from the directory.
			path, err := s.Files().Path(vars["filename"])
			if err != nil {
				http.NotFound(writer, request)
				return
			}
			if !s.Files().Exists(vars["filename"]) {
				http.NotFound(writer, request)
				return
			}
			http.ServeFile(writer, request, path)
		},
	).Methods("GET")
}
