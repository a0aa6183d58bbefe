package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// ListFixedExpenses returns the user's recurring expenses
func (h *Handler) ListFixedExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.GetFixedExpenses(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if expenses == nil {
		expenses = []models.FixedExpense{}
	}
	h.writeJSON(w, http.StatusOK, expenses)
}

// CreateFixedExpense creates a recurring expense
func (h *Handler) CreateFixedExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.FixedExpense
	if !h.decode(w, r, &expense) {
		return
	}
	created, err := h.svc.CreateFixedExpense(r.Context(), &expense)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateFixedExpense updates a recurring expense
func (h *Handler) UpdateFixedExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.FixedExpense
	if !h.decode(w, r, &expense) {
		return
	}
	expense.ID = mux.Vars(r)["id"]
	updated, err := h.svc.UpdateFixedExpense(r.Context(), &expense)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteFixedExpense removes a recurring expense
func (h *Handler) DeleteFixedExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFixedExpense(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListExtraExpenses returns the user's one-off expenses; ?since=RFC3339
// limits the window
func (h *Handler) ListExtraExpenses(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "Invalid since parameter", http.StatusBadRequest)
			return
		}
		since = parsed
	}
	expenses, err := h.svc.GetExtraExpenses(r.Context(), since)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if expenses == nil {
		expenses = []models.ExtraExpense{}
	}
	h.writeJSON(w, http.StatusOK, expenses)
}

// CreateExtraExpense creates a one-off expense
func (h *Handler) CreateExtraExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.ExtraExpense
	if !h.decode(w, r, &expense) {
		return
	}
	created, err := h.svc.CreateExtraExpense(r.Context(), &expense)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// DeleteExtraExpense removes a one-off expense
func (h *Handler) DeleteExtraExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteExtraExpense(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
