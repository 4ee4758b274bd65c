package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for every non-2xx reply:
// {"statusCode": 404, "message": "Showtime not found", "error": "Not Found"}.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error"`
}

// ResponseJSON writes payload as JSON with the given status code.
// Successful replies carry the resource itself, no envelope.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// ResponseError writes an error body. message may be a string or, for
// validation failures, a map of field errors.
func ResponseError(w http.ResponseWriter, code int, message any) {
	ResponseJSON(w, code, ErrorResponse{
		StatusCode: code,
		Message:    message,
		Error:      http.StatusText(code),
	})
}

// ------------- Shorthands -------------

func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func ResponseBadRequest(w http.ResponseWriter, message any) {
	ResponseError(w, http.StatusBadRequest, message)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message)
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
