package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"plantcart/internal/checkout"
	"plantcart/internal/order"
)

func (s *Server) submitCheckout(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sub, err := s.workflow.Submit(r.Context(), form)
	if err != nil {
		s.writeSubmissionError(w, sub, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) retryPayment(w http.ResponseWriter, r *http.Request) {
	sub, err := s.workflow.RetryPayment(r.Context())
	if err != nil {
		s.writeSubmissionError(w, sub, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) writeSubmissionError(w http.ResponseWriter, sub *order.Submission, err error) {
	switch {
	case errors.Is(err, order.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, sub)
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidPaymentMethod):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrSubmissionInProgress),
		errors.Is(err, order.ErrNoPendingPayment):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrCreateFailed),
		errors.Is(err, order.ErrPaymentSetup):
		writeRetriable(w, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
