package payment

import (
	"context"
	"net/http"
)

// IntentRequest asks the payment provider to prepare a card payment for an
// already-created order. Failure here is a setup failure, distinct from the
// order-creation call and from the payment itself.
type IntentRequest struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Intent carries the opaque client token that drives the provider's
// payment UI.
type Intent struct {
	ClientToken string `json:"client_token"`
}

type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	VerifyCallback(r *http.Request) error
}
