package httpx

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes the {"message": ...} envelope used by 401/404/500
// responses.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// WriteValidationErrors writes the 400 {"errors": [...]} envelope.
func WriteValidationErrors(w http.ResponseWriter, msgs []string) {
	WriteJSON(w, http.StatusBadRequest, map[string][]string{"errors": msgs})
}

// WriteServerError is the catch-all 500 shape: the error's message plus an
// empty error object, so internals never leak.
func WriteServerError(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"message": msg,
		"error":   map[string]any{},
	})
}
