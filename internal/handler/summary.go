package handler

import "net/http"

// GetFinancialSummary returns the consolidated dashboard summary
func (h *Handler) GetFinancialSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetFinancialSummary(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
