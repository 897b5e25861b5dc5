package backend

import (
	"context"
	"net/http"

	"sareemahal/internal/models"
)

// CreateOrderRequest is the cash-on-delivery order creation payload. The
// backend prices the order itself from the server-side cart; the shipping
// address travels as the flattened single line the order record stores.
type CreateOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	OrderNotes      string `json:"orderNotes"`
}

// CreateOrder places an order from the caller's current cart.
func (c *Client) CreateOrder(ctx context.Context, rc RequestContext, req CreateOrderRequest) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, rc, http.MethodPost, "/api/orders/create", nil, req, &order)
	return order, err
}
