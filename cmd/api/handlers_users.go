package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mansoorhotak/repairo-user-management-api/user"
)

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Postcode  *string `json:"postcode"`
}

func (s *Server) handleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	u, err := s.userService.GetByID(r.Context(), accountIDFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleUpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.userService.UpdateProfile(r.Context(), accountIDFrom(r.Context()), user.UpdateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Postcode:  req.Postcode,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(updated))
}

func (s *Server) handleDeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.userService.Delete(r.Context(), accountIDFrom(r.Context()))
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

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := s.userService.List(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	items := make([]userResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}
