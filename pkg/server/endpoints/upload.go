package endpoints

import (
	"errors"
	"net/http"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/audit"
	"pixelbin/pkg/server"
	"pixelbin/pkg/server/middleware"
	"pixelbin/pkg/uploads"
)

// RegisterUploadEndpoints registers the authenticated upload routes on the
// server
func RegisterUploadEndpoints(s *server.Server) {
	gate := middleware.NewSessionGate(s.Sessions, s.Users)

	uploadRouter := s.Router.PathPrefix("/upload").Subrouter()
	uploadRouter.Use(gate.Middleware)

	// GET /upload - Upload form metadata
	uploadRouter.HandleFunc(
		"",
		func(writer http.ResponseWriter, request *http.Request) {
			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"messages":           s.Sessions.Flashes(writer, request),
				"allowed_extensions": uploads.Extensions(),
				"max_upload_bytes":   s.MaxUploadBytes,
			})
		},
	).Methods("GET")

	// POST /upload - Run the upload pipeline
	uploadRouter.HandleFunc(
		"",
		func(writer http.ResponseWriter, request *http.Request) {
			user, ok := middleware.UserFrom(request.Context())
			if !ok {
				// The gate guarantees a user; a miss here is a wiring bug.
				respondWithError(writer, http.StatusInternalServerError, "no authenticated user")
				return
			}

			request.Body = http.MaxBytesReader(writer, request.Body, s.MaxUploadBytes)

			file, header, err := request.FormFile("image")
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				switch {
				case errors.Is(err, http.ErrMissingFile):
					err = apperror.NewValidation("No file part", err)
				case errors.As(err, &maxBytesErr):
					err = apperror.NewValidation("File is too large", err)
				default:
					err = apperror.NewValidation("Could not read upload", err)
				}
				auditUploadFailure(user.Username, request.RemoteAddr, err)
				failToward(s, writer, request, err, "/upload")
				return
			}
			defer file.Close()

			slug := request.FormValue("custom_slug")

			image, err := s.Uploader.Process(user.ID, file, header.Filename, slug)
			if err != nil {
				auditUploadFailure(user.Username, request.RemoteAddr, err)
				failToward(s, writer, request, err, "/upload")
				return
			}

			audit.Log(audit.UploadEvent{
				Username: user.Username,
				ClientIP: request.RemoteAddr,
				Filename: image.Filename,
				Slug:     slug,
				Success:  true,
			})
			flashAndRedirect(s, writer, request, "Image uploaded successfully!", "/image/"+itoa(image.ID))
		},
	).Methods("POST")
}

func auditUploadFailure(username string, clientIP string, err error) {
	audit.Log(audit.UploadEvent{
		Username:     username,
		ClientIP:     clientIP,
		Success:      false,
		ErrorMessage: apperror.UserMessage(err),
	})
}
