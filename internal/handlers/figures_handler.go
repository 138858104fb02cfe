package handlers

import (
	"net/http"

	"kassaBack/internal/models"
	"kassaBack/internal/services"
)

type FiguresHandler struct {
	Service *services.FigureService
}

type figuresResponse struct {
	Personal models.Figures `json:"personal"`
	Company  models.Figures `json:"company"`
}

// GetFigures returns personal and company figures as of an optional date
// (default today). Admins may request another member's figures via
// member_id; regular members only ever see their own.
func (h *FiguresHandler) GetFigures(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		http.Error(w, "member not authorized", http.StatusUnauthorized)
		return
	}

	asOf := models.Today()
	if s := r.URL.Query().Get("as_of"); s != "" {
		parsed, err := models.ParseDate(s)
		if err != nil {
			respondError(w, models.ErrInvalidDate)
			return
		}
		asOf = parsed
	}

	target := actor.ID
	if s := r.URL.Query().Get("member_id"); s != "" && s != actor.ID {
		if !actor.IsAdmin() {
			respondError(w, models.ErrUnauthorized)
			return
		}
		target = s
	}

	personal, err := h.Service.MemberFigures(r.Context(), target, asOf)
	if err != nil {
		respondError(w, err)
		return
	}
	company, err := h.Service.CompanyFigures(r.Context(), asOf)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, figuresResponse{Personal: personal, Company: company})
}
