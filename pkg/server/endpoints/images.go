package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pixelbin/pkg/server"
)

// RegisterImagesEndpoints registers the image detail and slug routes on the
// server
func RegisterImagesEndpoints(s *server.Server) {
	router := s.Router
	images := s.Images

	// GET /image/{id} - Image detail page; unknown IDs bounce home
	router.HandleFunc(
		"/image/{id:[0-9]+}",
		func(writer http.ResponseWriter, request *http.Request) {
			vars := mux.Vars(request)
			id, err := strconv.ParseUint(vars["id"], 10, 64)
			if err != nil {
				flashAndRedirect(s, writer, request, "Image not found", "/")
				return
			}

			image, err := images.ByID(uint(id))
			if err != nil {
				flashAndRedirect(s, writer, request, "Image not found", "/")
				return
			}

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"image":    imageToPayload(image),
				"messages": s.Sessions.Flashes(writer, request),
			})
		},
	).Methods("GET")

	// GET /i/{slug} - Raw original bytes addressed by custom slug
	router.HandleFunc(
		"/i/{slug}",
		func(writer http.ResponseWriter, request *http.Request) {
			vars := mux.Vars(request)

			image, err := images.BySlug(vars["slug"])
			if err != nil {
				http.NotFound(writer, request)
				return
			}

			path, err := s.Files().Path(image.Filename)
			if err != nil {
				http.NotFound(writer, request)
				return
			}
			http.ServeFile(writer, request, path)
		},
	).Methods("GET")
}
