package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint.
func Health(errs *ErrorHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			errs.MethodNotAllowed(w, r, http.MethodGet)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
