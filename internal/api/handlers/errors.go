package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"location-sunrise-service/internal/api/dto"
	"location-sunrise-service/internal/domain"
)

// ErrorHandler is the single place failures become HTTP responses.
// Handlers pass errors through untouched; status codes are decided here.
type ErrorHandler struct{}

func NewErrorHandler() *ErrorHandler { return &ErrorHandler{} }

// Render maps a pipeline failure to a status code and a JSON error body.
// The body message is always the error's own message.
func (e *ErrorHandler) Render(w http.ResponseWriter, r *http.Request, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		e.write(w, r, http.StatusNotFound, nf.Error())
		return
	}

	log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	e.write(w, r, http.StatusInternalServerError, err.Error())
}

// NotFound renders the unmatched-route response.
func (e *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	e.write(w, r, http.StatusNotFound, "path not found")
}

// BadRequest renders malformed-request responses.
func (e *ErrorHandler) BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	e.write(w, r, http.StatusBadRequest, msg)
}

// MethodNotAllowed renders a 405 with the Allow header set.
func (e *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	e.write(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (e *ErrorHandler) write(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
