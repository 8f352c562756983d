package models

// CartItem is one product line in the local cart. Product is a snapshot of
// catalog data as known when the item was added or last updated; Quantity is
// always positive and never exceeds Product.Stock at mutation time.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line price: unit price times quantity.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
