package catalog

// Product is a read-only snapshot supplied by the catalog service. The cart
// never mutates it; it only stores a copy taken at add time. InStock comes
// from the source as-is and is not re-derived from AvailableQty here.
type Product struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	AvailableQty int     `json:"available_qty"`
	InStock      bool    `json:"in_stock"`
	CategoryID   string  `json:"category_id"`
}
