// Package response writes JSON bodies in the API's shared envelope.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the envelope of every error response.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func JSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{
		StatusCode: code,
		Message:    message,
		Error:      http.StatusText(code),
	})
}
