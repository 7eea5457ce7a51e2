package cart

import (
	"time"

	"plantcart/internal/catalog"
)

// LineItem pairs a product snapshot with the requested quantity. The
// snapshot is the one taken when the item was added (or last merged), so
// quantity checks run against the availability known at that time.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (li LineItem) Subtotal() float64 {
	return float64(li.Quantity) * li.Product.Price
}

// State is the full cart snapshot, exactly as persisted. TotalItems and
// TotalAmount are always recomputed from Items, never mutated independently.
// Version and SavedAt tag the snapshot so a stale cross-tab write can be
// detected later; writes themselves stay last-write-wins.
type State struct {
	Items       []LineItem `json:"items"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
	Version     uint64     `json:"version"`
	SavedAt     time.Time  `json:"saved_at"`
}
