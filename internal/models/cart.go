package models

// CartItem is one product+quantity line of the server-side cart. The embedded
// product is the backend's copy; the client never computes authoritative
// prices from it, only display values.
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the display-only price*quantity for this line. The server owns
// the authoritative amount.
func (ci *CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
