package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mansoorhotak/repairo-user-management-api/auth"
	"github.com/mansoorhotak/repairo-user-management-api/provider"
	"github.com/mansoorhotak/repairo-user-management-api/user"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain errors onto the HTTP taxonomy. Anything
// unexpected is flattened to a generic 500 with no internal detail.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, auth.ErrValidation),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrDuplicateEmail),
		errors.Is(err, auth.ErrInvalidResetToken),
		errors.Is(err, user.ErrDuplicateEmail),
		errors.Is(err, provider.ErrDuplicateEmail),
		errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, provider.ErrInvalidInput),
		errors.Is(err, provider.ErrUnknownExpertise):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrAccountNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, provider.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error("unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
