package endpoints

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/audit"
	"pixelbin/pkg/server"
)

// RegisterAccountsEndpoints registers account registration on the server
func RegisterAccountsEndpoints(s *server.Server) {
	router := s.Router
	users := s.Users

	// GET /register - Registration form metadata
	router.HandleFunc(
		"/register",
		func(writer http.ResponseWriter, request *http.Request) {
			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"messages": s.Sessions.Flashes(writer, request),
			})
		},
	).Methods("GET")

	// POST /register - Create an account
	router.HandleFunc(
		"/register",
		func(writer http.ResponseWriter, request *http.Request) {
			username := request.FormValue("username")
			password := request.FormValue("password")
			if username == "" || password == "" {
				failToward(s, writer, request, apperror.NewValidation("Username and password are required", nil), "/register")
				return
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				failToward(s, writer, request, apperror.NewInternal("failed to hash password", err), "/register")
				return
			}

			if _, err := users.Create(username, hash); err != nil {
				audit.Log(audit.SignupEvent{
					Username:     username,
					ClientIP:     request.RemoteAddr,
					Success:      false,
					ErrorMessage: apperror.UserMessage(err),
				})
				failToward(s, writer, request, err, "/register")
				return
			}

			audit.Log(audit.SignupEvent{
				Username: username,
				ClientIP: request.RemoteAddr,
				Success:  true,
			})
			flashAndRedirect(s, writer, request, "Registration successful! Please login.", "/login")
		},
	).Methods("POST")
}
