package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/payment"
)

// PaymentHandler handles checkout requests.
type PaymentHandler struct {
	client *payment.Client
}

func NewPaymentHandler(client *payment.Client) *PaymentHandler {
	return &PaymentHandler{client: client}
}

// HandleCheckout handles POST /payments/checkout
// (JSON: amount_cents, currency, metadata).
func (h *PaymentHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)

	var req struct {
		AmountCents int64             `json:"amount_cents"`
		Currency    string            `json:"currency"`
		Metadata    map[string]string `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}
	if req.AmountCents <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("amount_cents must be positive"))
		return
	}

	session, err := h.client.CreateCheckoutSession(r.Context(), req.AmountCents, req.Currency, req.Metadata)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResponse("payment provider error"))
		return
	}

	writeJSON(w, http.StatusOK, session)
}
