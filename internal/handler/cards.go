package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// ListCreditCards returns the user's cards with purchases attached
func (h *Handler) ListCreditCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.GetCreditCards(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if cards == nil {
		cards = []models.CreditCard{}
	}
	h.writeJSON(w, http.StatusOK, cards)
}

// CreateCreditCard creates a new card
func (h *Handler) CreateCreditCard(w http.ResponseWriter, r *http.Request) {
	var card models.CreditCard
	if !h.decode(w, r, &card) {
		return
	}
	created, err := h.svc.CreateCreditCard(r.Context(), &card)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateCreditCard updates a card
func (h *Handler) UpdateCreditCard(w http.ResponseWriter, r *http.Request) {
	var card models.CreditCard
	if !h.decode(w, r, &card) {
		return
	}
	card.ID = mux.Vars(r)["id"]
	updated, err := h.svc.UpdateCreditCard(r.Context(), &card)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteCreditCard removes a card
func (h *Handler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCreditCard(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCardPurchases returns the user's purchases; ?card_id= filters to
// one card
func (h *Handler) ListCardPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.svc.GetCardPurchases(r.Context(), r.URL.Query().Get("card_id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if purchases == nil {
		purchases = []models.CardPurchase{}
	}
	h.writeJSON(w, http.StatusOK, purchases)
}

// CreateCardPurchase records a purchase against a card
func (h *Handler) CreateCardPurchase(w http.ResponseWriter, r *http.Request) {
	var purchase models.CardPurchase
	if !h.decode(w, r, &purchase) {
		return
	}
	created, err := h.svc.CreateCardPurchase(r.Context(), &purchase)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// DeleteCardPurchase removes a purchase
func (h *Handler) DeleteCardPurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCardPurchase(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
