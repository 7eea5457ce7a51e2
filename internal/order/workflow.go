package order

import (
	"context"
	"fmt"
	"sync"

	"plantcart/internal/cart"
	"plantcart/internal/checkout"
	"plantcart/internal/logger"
	"plantcart/internal/payment"

	"go.uber.org/zap"
)

// Phase is the submission workflow state. Complete and Failed are terminal
// for one attempt; a fresh Submit starts a new cycle.
type Phase string

const (
	PhaseIdle              Phase = "IDLE"
	PhaseCreating          Phase = "CREATING"
	PhaseAwaitingPayment   Phase = "AWAITING_PAYMENT"
	PhasePaymentInProgress Phase = "PAYMENT_IN_PROGRESS"
	PhaseComplete          Phase = "COMPLETE"
	PhaseFailed            Phase = "FAILED"
)

// Submission is the outcome of a Submit/RetryPayment call.
type Submission struct {
	Order       *Order            `json:"order,omitempty"`
	Phase       Phase             `json:"phase"`
	ClientToken string            `json:"client_token,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Workflow sequences cart contents, validated form data and the payment
// collaborator into a finalized order.
//
// The cart is cleared if and only if the order was created AND (the method
// is COD OR the payment was confirmed). A failed payment or a failed
// creation call leaves the cart intact so the shopper can retry without
// re-adding items.
//
// The mutex is held across the collaborator calls: a second Submit while
// one is in flight fails with ErrSubmissionInProgress instead of creating a
// duplicate order.
type Workflow struct {
	mu       sync.Mutex
	phase    Phase
	cart     *cart.Store
	creator  Creator
	gateway  payment.Gateway
	records  *RecordStore
	currency string

	// retained after a payment-setup failure so a retry reuses the created
	// order instead of duplicating it
	pendingOrderID string
	pendingAmount  float64
}

func NewWorkflow(c *cart.Store, creator Creator, gateway payment.Gateway, records *RecordStore, currency string) *Workflow {
	return &Workflow{
		phase:    PhaseIdle,
		cart:     c,
		creator:  creator,
		gateway:  gateway,
		records:  records,
		currency: currency,
	}
}

func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Submit runs one checkout attempt: validate, create the order, then either
// finalize (COD) or obtain a payment intent (card).
func (w *Workflow) Submit(ctx context.Context, form checkout.Form) (*Submission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.phase {
	case PhaseCreating, PhaseAwaitingPayment, PhasePaymentInProgress:
		return nil, ErrSubmissionInProgress
	}

	if w.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	res := checkout.Validate(form)
	if !res.Valid {
		return &Submission{Phase: w.phase, FieldErrors: res.FieldErrors}, ErrValidation
	}

	method, err := ParsePaymentMethod(form.PaymentMethod)
	if err != nil {
		return nil, err
	}

	// new attempt; previous pending state no longer applies
	w.pendingOrderID = ""
	w.pendingAmount = 0
	w.phase = PhaseCreating

	state := w.cart.State()
	items := make([]Item, 0, len(state.Items))
	for _, li := range state.Items {
		items = append(items, Item{
			ProductID: li.Product.ID,
			Quantity:  li.Quantity,
			Price:     li.Product.Price,
		})
	}

	ord, err := w.creator.Create(ctx, CreateRequest{
		CustomerName:  form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		Street:        form.Street,
		City:          form.City,
		State:         form.State,
		Zip:           form.Zip,
		Items:         items,
		PaymentMethod: method,
	})
	if err != nil {
		w.phase = PhaseFailed
		logger.FromCtx(ctx).Error("order creation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	if ord.PaymentStatus == "" {
		ord.PaymentStatus = PaymentPending
	}
	if ord.FulfillmentStatus == "" {
		ord.FulfillmentStatus = FulfillmentPending
	}
	w.records.Append(*ord)

	if method == MethodCOD {
		w.cart.Clear(ctx)
		w.phase = PhaseComplete
		logger.FromCtx(ctx).Info("order finalized",
			zap.String("order_id", ord.ID),
			zap.String("payment_method", "COD"),
		)
		return &Submission{Order: ord, Phase: w.phase}, nil
	}

	w.phase = PhaseAwaitingPayment
	w.pendingOrderID = ord.ID
	w.pendingAmount = ord.Total

	return w.requestIntent(ctx, ord)
}

// RetryPayment re-requests a payment intent for the order retained from a
// failed setup or a declined payment. No new order is created.
func (w *Workflow) RetryPayment(ctx context.Context) (*Submission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pendingOrderID == "" {
		return nil, ErrNoPendingPayment
	}
	if w.phase != PhaseCreating && w.phase != PhaseFailed {
		return nil, ErrSubmissionInProgress
	}

	ord, ok := w.records.Get(w.pendingOrderID)
	if !ok {
		return nil, ErrOrderNotFound
	}

	w.phase = PhaseAwaitingPayment
	return w.requestIntent(ctx, &ord)
}

// requestIntent must be called with the lock held and phase AwaitingPayment.
func (w *Workflow) requestIntent(ctx context.Context, ord *Order) (*Submission, error) {
	intent, err := w.gateway.CreateIntent(ctx, payment.IntentRequest{
		OrderID:  ord.ID,
		Amount:   w.pendingAmount,
		Currency: w.currency,
	})
	if err != nil {
		// the order exists but is unpaid; stay retriable and keep its id
		w.phase = PhaseCreating
		logger.FromCtx(ctx).Error("payment setup failed",
			zap.String("order_id", ord.ID),
			zap.Error(err),
		)
		return &Submission{Order: ord, Phase: w.phase}, fmt.Errorf("%w: %v", ErrPaymentSetup, err)
	}

	w.phase = PhasePaymentInProgress
	return &Submission{Order: ord, Phase: w.phase, ClientToken: intent.ClientToken}, nil
}

// CompletePayment applies the payment collaborator's asynchronous verdict
// for the in-flight order. Only a confirmed payment clears the cart.
func (w *Workflow) CompletePayment(ctx context.Context, orderID string, succeeded bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhasePaymentInProgress || orderID != w.pendingOrderID {
		return ErrNoPendingPayment
	}

	ord, ok := w.records.Get(orderID)

	if succeeded {
		if ok {
			ord.PaymentStatus = PaymentPaid
			w.records.Replace(ord)
		}
		w.cart.Clear(ctx)
		w.phase = PhaseComplete
		w.pendingOrderID = ""
		w.pendingAmount = 0
		logger.FromCtx(ctx).Info("payment confirmed", zap.String("order_id", orderID))
		return nil
	}

	if ok {
		ord.PaymentStatus = PaymentFailed
		w.records.Replace(ord)
	}
	// cart untouched; pending order retained so RetryPayment can run
	w.phase = PhaseFailed
	logger.FromCtx(ctx).Warn("payment failed", zap.String("order_id", orderID))
	return nil
}

// Abandon gives up on an unpaid card order. The cart keeps its contents.
func (w *Workflow) Abandon() {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.phase {
	case PhaseCreating, PhaseAwaitingPayment, PhasePaymentInProgress:
		w.phase = PhaseFailed
	}
}
