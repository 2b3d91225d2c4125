package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pixelbin/pkg/apperror"
	"pixelbin/pkg/server"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// flashAndRedirect queues a one-shot message and sends the browser to
// location.
func flashAndRedirect(s *server.Server, w http.ResponseWriter, r *http.Request, message string, location string) {
	s.Sessions.Flash(w, r, message)
	http.Redirect(w, r, location, http.StatusFound)
}

// failToward turns any error into a flash and a redirect. Untagged errors
// surface as a generic message so internals never reach the browser.
func failToward(s *server.Server, w http.ResponseWriter, r *http.Request, err error, location string) {
	flashAndRedirect(s, w, r, apperror.UserMessage(err), location)
}
