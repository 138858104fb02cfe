package handlers

import (
	"encoding/json"
	"net/http"

	"kassaBack/internal/models"
	"kassaBack/internal/services"
)

type InvestmentHandler struct {
	Service *services.InvestmentService
}

// CreateInvestment opens a new investment. Admin only.
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		http.Error(w, "member not authorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	inv, err := h.Service.CreateInvestment(r.Context(), actor, req)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, models.ErrInvalidInvestment)
			return
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, inv)
}

// GetInvestments returns the dashboard payload for the authenticated
// viewer: personal and company figures plus sanitized investment views.
func (h *InvestmentHandler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		http.Error(w, "member not authorized", http.StatusUnauthorized)
		return
	}

	dash, err := h.Service.ListForViewer(r.Context(), actor.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dash)
}

// RecordPayment applies a payment against an investment. Admin only. The
// payment date defaults to today when omitted.
func (h *InvestmentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		http.Error(w, "member not authorized", http.StatusUnauthorized)
		return
	}

	investmentID := getParam(r, "id")
	if investmentID == "" {
		http.Error(w, "invalid investment id", http.StatusBadRequest)
		return
	}

	var req models.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.RecordPayment(r.Context(), actor, investmentID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
