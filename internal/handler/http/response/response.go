package response

import (
	"encoding/json"
	"net/http"

	"github.com/paylite/payslip-backend-go/internal/pkg/validator"
)

// ErrorBody is the wire shape of every failure: a message plus, for
// validation failures, the full list of field violations.
type ErrorBody struct {
	Error   string                     `json:"error"`
	Details validator.ValidationErrors `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: "Failed to encode response"})
	}
}

// Success responses carry the raw record(s), no envelope.
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: message, Details: details})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{Error: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorBody{Error: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{Error: message})
}
