package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"portfolio-api/internal/logger"
	"portfolio-api/internal/pkg/errors"
	"portfolio-api/internal/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response.JSON(w, code, payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	response.Error(w, code, message)
}

// respondWithServiceError maps a service error onto its HTTP status. Unknown
// errors are logged and reported as a generic 500.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		respondWithError(w, http.StatusNotFound, errors.Message(err, "Not found"))
	case errors.Is(err, errors.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, errors.Message(err, "Bad request"))
	case errors.Is(err, errors.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, errors.Message(err, "Unauthorized"))
	case errors.Is(err, errors.ErrRateLimited):
		respondWithError(w, http.StatusTooManyRequests, errors.Message(err, "Too many requests"))
	default:
		logger.LogEvent(logrus.ErrorLevel, "Request failed", logrus.Fields{
			"method": r.Method,
			"url":    r.URL.Path,
			"error":  err.Error(),
		})
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads the request body into v, rejecting bodies that are not valid
// JSON or that carry fields v does not declare.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			respondWithError(w, http.StatusBadRequest, "property "+strings.Trim(field, `"`)+" should not exist")
			return false
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// parseID reads the {id} route variable as a positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		respondWithError(w, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return 0, false
	}
	return uint(id), true
}
