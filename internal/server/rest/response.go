package rest

import (
	"encoding/json"
	"net/http"
)

const (
	msgInvalidBody = "Invalid request body"
	msgServerError = "Server error"
	msgNotFound    = "Not found"
	msgNotAllowed  = "Method not allowed"
)

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// readJSON decodes one JSON value from a body capped at maxBodyBytes.
// Unknown fields are ignored.
func readJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	return json.NewDecoder(body).Decode(dest)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusNotFound, msgNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, msgNotAllowed)
}
