package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"plantcart/internal/order"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.List())
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	ord, ok := s.records.Get(chi.URLParam(r, "orderID"))
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

type paymentCallbackReq struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// paymentCallback receives the payment collaborator's asynchronous verdict.
func (s *Server) paymentCallback(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.VerifyCallback(r); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid callback")
		return
	}

	var req paymentCallbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OrderID == "" {
		writeError(w, http.StatusBadRequest, "order_id is required")
		return
	}

	succeeded := req.Status == "PAID"
	if err := s.workflow.CompletePayment(r.Context(), req.OrderID, succeeded); err != nil {
		if errors.Is(err, order.ErrNoPendingPayment) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}
