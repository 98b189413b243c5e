package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baechuer/grandveggie/internal/domain"
)

type Envelope struct {
	Data any `json:"data"`
}

// Result is the outcome shape of the sign-in and sign-up calls.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes v as JSON with the given status code.
// It sets Content-Type to application/json; charset=utf-8 if not already set.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response with {"data": ...}.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Data: data})
}

// Created writes a 201 response with {"data": ...}.
func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Data: data})
}

// NoContent writes a 204 response with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteResult writes {"success":true} with okStatus when err is nil, and
// {"success":false,"error":<label>} with the mapped status otherwise.
func WriteResult(w http.ResponseWriter, okStatus int, err error) {
	if err == nil {
		WriteJSON(w, okStatus, Result{Success: true})
		return
	}

	status := http.StatusInternalServerError
	res := Result{Error: domain.Message(err), Code: "internal_error"}
	var de *domain.Error
	if errors.As(err, &de) {
		status = StatusFromKind(de.Kind)
		res.Code = de.Code
	}
	WriteJSON(w, status, res)
}
