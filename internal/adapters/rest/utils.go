package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"estate-service/internal/core/domain"
)

// WriteJSONError sends a JSON body with a single "error" field.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON sends any payload as JSON.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError maps core errors onto HTTP statuses: validation
// failures become 400 with per-field details, missing records 404,
// everything else a generic 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	if domain.IsNotFound(err) {
		WriteJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	WriteJSONError(w, http.StatusInternalServerError, "internal server error")
}
