package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mansoorhotak/repairo-user-management-api/account"
	"github.com/mansoorhotak/repairo-user-management-api/auth"
	"github.com/mansoorhotak/repairo-user-management-api/provider"
	"github.com/mansoorhotak/repairo-user-management-api/user"
)

// userResponse is the outward-facing shape of a regular account. It never
// carries the password hash.
type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Postcode  string `json:"postcode"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// providerResponse is the outward-facing shape of a provider account.
type providerResponse struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Postcode    string   `json:"postcode"`
	Expertise   []string `json:"expertise"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Kind    string `json:"kind"`
	Account any    `json:"account"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Postcode:  u.Postcode,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func toProviderResponse(p provider.Provider) providerResponse {
	return providerResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Postcode:    p.Postcode,
		Expertise:   p.Expertise,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func accountPayload(acct account.Account) any {
	switch a := acct.(type) {
	case user.User:
		return toUserResponse(a)
	case provider.Provider:
		return toProviderResponse(a)
	default:
		return nil
	}
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.authService.RegisterUser(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(created))
}

func (s *Server) handleRegisterProvider(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.authService.RegisterProvider(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toProviderResponse(created))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.authService.Login(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token:   result.Token,
		Kind:    string(result.Kind),
		Account: accountPayload(result.Account),
	})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset email sent"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.authService.ResetPassword(r.Context(), req); err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password has been reset"})
}

func (s *Server) handleExpertiseCategories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"categories": provider.ExpertiseCategories()})
}
