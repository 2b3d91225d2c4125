package endpoints

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"pixelbin/pkg/audit"
	"pixelbin/pkg/server"
)

// RegisterSessionEndpoints registers login and logout on the server
func RegisterSessionEndpoints(s *server.Server) {
	router := s.Router
	users := s.Users

	// GET /login - Login form metadata
	router.HandleFunc(
		"/login",
		func(writer http.ResponseWriter, request *http.Request) {
			respondWithJSON(writer, http.StatusOK, map[string]interface{}{
				"messages": s.Sessions.Flashes(writer, request),
			})
		},
	).Methods("GET")

	// POST /login - Authenticate and establish a session
	router.HandleFunc(
		"/login",
		func(writer http.ResponseWriter, request *http.Request) {
			username := request.FormValue("username")
			password := request.FormValue("password")

			// Unknown user and wrong password take the same path so the
			// response never reveals which one happened.
			user, err := users.ByUsername(username)
			if err == nil {
				err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password))
			}
			if err != nil {
				audit.Log(audit.LoginEvent{
					Username:     username,
					ClientIP:     request.RemoteAddr,
					Success:      false,
					ErrorMessage: "invalid credentials",
				})
				flashAndRedirect(s, writer, request, "Invalid username or password", "/login")
				return
			}

			if err := s.Sessions.Establish(writer, request, user.ID); err != nil {
				flashAndRedirect(s, writer, request, "Something went wrong. Please try again.", "/login")
				return
			}

			audit.Log(audit.LoginEvent{
				Username: user.Username,
				ClientIP: request.RemoteAddr,
				Success:  true,
			})
			http.Redirect(writer, request, "/", http.StatusFound)
		},
	).Methods("POST")

	// GET /logout - Destroy the session
	router.HandleFunc(
		"/logout",
		func(writer http.ResponseWriter, request *http.Request) {
			if id, ok := s.Sessions.UserID(request); ok {
				if user, err := users.ByID(id); err == nil {
					audit.Log(audit.LogoutEvent{
						Username: user.Username,
						ClientIP: request.RemoteAddr,
					})
				}
			}
			_ = s.Sessions.Clear(writer, request)
			http.Redirect(writer, request, "/", http.StatusFound)
		},
	).Methods("GET")
}
