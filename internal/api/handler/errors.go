package handler

import (
	"errors"
	"log"
	"net/http"

	"dormidine/internal/core/service"
)

// writeError maps the service error taxonomy onto status codes. Storage
// failures are logged and surfaced opaquely.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrGateway):
		http.Error(w, "payment provider unavailable", http.StatusBadGateway)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
