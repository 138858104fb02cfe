package handlers

import (
	"encoding/json"
	"net/http"

	"kassaBack/internal/models"
)

// actorFromContext rebuilds the authenticated member from the claims the
// JWT middleware stored on the request context.
func actorFromContext(r *http.Request) (models.Member, bool) {
	memberID, ok := r.Context().Value("member_id").(string)
	if !ok || memberID == "" {
		return models.Member{}, false
	}
	role, _ := r.Context().Value("role").(string)
	return models.Member{ID: memberID, Role: role}, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, errorStatus(err), errorResponse{Error: err.Error()})
}

// errorStatus maps core errors to HTTP statuses. Anything unknown is a
// server error.
func errorStatus(err error) int {
	switch err {
	case models.ErrInvalidAmount, models.ErrInvalidInvestment, models.ErrInvalidMember, models.ErrInvalidDate:
		return http.StatusBadRequest
	case models.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case models.ErrUnauthorized:
		return http.StatusForbidden
	case models.ErrInvestmentNotFound, models.ErrMemberNotFound, models.ErrNoRecord:
		return http.StatusNotFound
	case models.ErrInvestmentEnded, models.ErrPaymentBackdated:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
