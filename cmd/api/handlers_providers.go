package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mansoorhotak/repairo-user-management-api/provider"
)

type updateProviderRequest struct {
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	Postcode    *string  `json:"postcode"`
	Expertise   []string `json:"expertise"`
	Description *string  `json:"description"`
}

func (s *Server) handleGetProviderProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.providerService.GetByID(r.Context(), accountIDFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProviderResponse(p))
}

func (s *Server) handleUpdateProviderProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.providerService.UpdateProfile(r.Context(), accountIDFrom(r.Context()), provider.UpdateParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Postcode:    req.Postcode,
		Expertise:   req.Expertise,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProviderResponse(updated))
}

func (s *Server) handleDeleteProviderProfile(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.providerService.Delete(r.Context(), accountIDFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}

func (s *Server) handleGetProvider(w http.ResponseWriter, r *http.Request) {
	p, err := s.providerService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProviderResponse(p))
}

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	providers, err := s.providerService.List(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": toProviderResponses(providers), "total": len(providers)})
}

func (s *Server) handleProvidersByExpertise(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	providers, err := s.providerService.ListByExpertise(r.Context(), chi.URLParam(r, "tag"), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": toProviderResponses(providers), "total": len(providers)})
}

func toProviderResponses(providers []provider.Provider) []providerResponse {
	items := make([]providerResponse, 0, len(providers))
	for _, p := range providers {
		items = append(items, toProviderResponse(p))
	}
	return items
}
