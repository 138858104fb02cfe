package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"kassaBack/internal/models"
	"kassaBack/internal/services"
)

type MemberHandler struct {
	Service *services.MemberService
}

// SignIn authenticates by access code and returns the member with a fresh
// token pair.
func (h *MemberHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.SignIn(r.Context(), req.Code)
	if err != nil {
		if err != models.ErrInvalidCredentials {
			log.Printf("error: %v", err)
		}
		http.Error(w, "Invalid access code", http.StatusUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateMember registers a new member. Admin only.
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		http.Error(w, "member not authorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.Service.CreateMember(r.Context(), actor, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, member)
}

// GetMembers lists all members without credential fields.
func (h *MemberHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.ListMembers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, members)
}
