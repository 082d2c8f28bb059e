package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes v as the JSON response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do but note it.
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondError writes the {"message": ...} error envelope every route uses.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}

// RespondMessage is RespondError's success-side twin for verbs with no
// natural resource body (logout, delete, reset-password).
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}
