package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart            = errors.New("cart is empty")
	ErrValidation           = errors.New("checkout form is invalid")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// -- Workflow State --
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrNoPendingPayment     = errors.New("no pending payment for this order")

	// -- Collaborator Failures (all retriable) --
	ErrCreateFailed = errors.New("order creation failed")
	ErrPaymentSetup = errors.New("payment setup failed")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)
