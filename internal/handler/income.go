package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// ListIncomeSources returns the user's income sources
func (h *Handler) ListIncomeSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.svc.GetIncomeSources(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if sources == nil {
		sources = []models.IncomeSource{}
	}
	h.writeJSON(w, http.StatusOK, sources)
}

// CreateIncomeSource creates a recurring income source
func (h *Handler) CreateIncomeSource(w http.ResponseWriter, r *http.Request) {
	var src models.IncomeSource
	if !h.decode(w, r, &src) {
		return
	}
	created, err := h.svc.CreateIncomeSource(r.Context(), &src)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateIncomeSource updates a recurring income source
func (h *Handler) UpdateIncomeSource(w http.ResponseWriter, r *http.Request) {
	var src models.IncomeSource
	if !h.decode(w, r, &src) {
		return
	}
	src.ID = mux.Vars(r)["id"]
	updated, err := h.svc.UpdateIncomeSource(r.Context(), &src)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteIncomeSource removes an income source
func (h *Handler) DeleteIncomeSource(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteIncomeSource(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListIncomeHistory returns realized income events; ?source_id= filters
// to one source, ?since=RFC3339 limits the window
func (h *Handler) ListIncomeHistory(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "Invalid since parameter", http.StatusBadRequest)
			return
		}
		since = parsed
	}
	history, err := h.svc.GetIncomeHistory(r.Context(), r.URL.Query().Get("source_id"), since)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if history == nil {
		history = []models.IncomeHistory{}
	}
	h.writeJSON(w, http.StatusOK, history)
}

// CreateIncomeHistory records a realized income event
func (h *Handler) CreateIncomeHistory(w http.ResponseWriter, r *http.Request) {
	var record models.IncomeHistory
	if !h.decode(w, r, &record) {
		return
	}
	created, err := h.svc.CreateIncomeHistory(r.Context(), &record)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}
