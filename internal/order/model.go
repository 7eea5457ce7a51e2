package order

import (
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	MethodCOD  PaymentMethod = "COD"
	MethodCard PaymentMethod = "CARD"
)

// ParsePaymentMethod accepts the wire spellings used by the storefront.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cod", "pay-on-delivery":
		return MethodCOD, nil
	case "card":
		return MethodCard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

type FulfillmentStatus string

const (
	FulfillmentPending    FulfillmentStatus = "PENDING"
	FulfillmentProcessing FulfillmentStatus = "PROCESSING"
	FulfillmentShipped    FulfillmentStatus = "SHIPPED"
	FulfillmentDelivered  FulfillmentStatus = "DELIVERED"
	FulfillmentCancelled  FulfillmentStatus = "CANCELLED"
)

// Item captures product id, quantity and the unit price at submission time.
// Prices are never re-read from the catalog afterwards; the order is a
// historical record.
type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the client's echo of a submitted order. Once created it is owned
// by the order backend; fulfillment transitions arrive via re-fetch, not
// from this core.
type Order struct {
	ID                string            `json:"id"`
	CustomerName      string            `json:"customer_name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Street            string            `json:"street"`
	City              string            `json:"city"`
	State             string            `json:"state"`
	Zip               string            `json:"zip"`
	Items             []Item            `json:"items"`
	Total             float64           `json:"total"`
	PaymentMethod     PaymentMethod     `json:"payment_method"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
	CreatedAt         time.Time         `json:"created_at"`
}
