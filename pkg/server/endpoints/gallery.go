package endpoints

import (
	"net/http"
	"time"

	"pixelbin/pkg/model"
	"pixelbin/pkg/server"
)

type imagePayload struct {
	ID           uint      `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PageURL      string    `json:"page_url"`
	SlugURL      string    `json:"slug_url,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func imageToPayload(image *model.Image) imagePayload {
	p := imagePayload{
		ID:           image.ID,
		URL:          "/uploads/" + image.Filename,
		ThumbnailURL: "/uploads/" + image.Thumbnail,
		PageURL:      "/image/" + itoa(image.ID),
		UploadedAt:   image.UploadedAt,
	}
	if image.HasSlug() {
		p.SlugURL = "/i/" + *image.Slug
	}
	return p
}

// RegisterGalleryEndpoint registers the landing page on the server
func RegisterGalleryEndpoint(s *server.Server) {
	router := s.Router
	images := s.Images

	// GET / - Gallery of every upload, newest first
	router.HandleFunc(
		"/",
		func(writer http.ResponseWriter, request *http.Request) {
			records, err := images.Newest(0)
			if err != nil {
				respondWithError(writer, http.StatusInternalServerError, "failed to list images")
				return
			}

			payloads := make([]imagePayload, 0, len(records))
			for i := range records {
				payloads = append(payloads, imageToPayload(&records[i]))
			}

			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"images":   payloads,
				"messages": s.Sessions.Flashes(writer, request),
			})
		},
	).Methods("GET")
}
