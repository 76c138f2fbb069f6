package api

import (
	"encoding/json"
	"net/http"
)

// Client-facing error bodies. Store details are logged, never returned.
const (
	ErrorInvalidRequest = "Invalid Request"
	ErrorNotFound       = "Not Found"
	ErrorInternal       = "Internal Server Error"
)

const noDataMessage = "Oops, there is no data matching your query, try another "

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned with 200 when a lookup matched nothing
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// WriteError writes an ErrorResponse with the given status
func WriteError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, ErrorResponse{Error: message})
}

// NotFound answers unmatched routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, ErrorNotFound)
}

// MethodNotAllowed answers matched routes called with the wrong method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, ErrorNotFound)
}
