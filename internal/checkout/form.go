package checkout

// Form is the customer-entered shipping/contact data gating an order
// submission. It is transient: never persisted across sessions.
// PaymentMethod is parsed by the order workflow, not validated here.
type Form struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,contact_email"`
	Phone         string `json:"phone" validate:"required"`
	Street        string `json:"street" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	Zip           string `json:"zip" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}
