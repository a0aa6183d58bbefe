package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// ListInvestments returns the user's positions
func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.svc.GetInvestments(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if investments == nil {
		investments = []models.Investment{}
	}
	h.writeJSON(w, http.StatusOK, investments)
}

// CreateInvestment creates a position
func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var inv models.Investment
	if !h.decode(w, r, &inv) {
		return
	}
	created, err := h.svc.CreateInvestment(r.Context(), &inv)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateInvestment updates a position
func (h *Handler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	var inv models.Investment
	if !h.decode(w, r, &inv) {
		return
	}
	inv.ID = mux.Vars(r)["id"]
	updated, err := h.svc.UpdateInvestment(r.Context(), &inv)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteInvestment removes a position
func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInvestment(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RefreshCryptoPrices marks the user's crypto positions to market.
// Per-symbol failures are reported in the result, not as an error.
func (h *Handler) RefreshCryptoPrices(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RefreshCryptoPrices(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
