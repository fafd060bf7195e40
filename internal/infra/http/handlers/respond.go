package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/onboard-desk/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the usecase error taxonomy onto HTTP statuses. Backend
// failures stay 500 with the message surfaced verbatim.
func writeError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch de.Code {
		case "DUPLICATE_EMAIL":
			status = http.StatusConflict
		case "INVALID_CREDENTIALS":
			status = http.StatusUnauthorized
		case "NOT_REGISTERED":
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": de.Message, "code": de.Code})
		return
	}
	if te, ok := err.(*usecase.TechnicalError); ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": te.Message, "code": te.Code})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
