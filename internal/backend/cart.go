package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"sareemahal/internal/models"
)

// GetCart fetches the caller's cart lines.
func (c *Client) GetCart(ctx context.Context, rc RequestContext) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.do(ctx, rc, http.MethodGet, "/api/cart", nil, nil, &items)
	return items, err
}

// GetCartCount fetches the server-side item count.
func (c *Client) GetCartCount(ctx context.Context, rc RequestContext) (int, error) {
	var count int
	err := c.do(ctx, rc, http.MethodGet, "/api/cart/count", nil, nil, &count)
	return count, err
}

// AddToCart adds quantity of a product to the caller's cart.
func (c *Client) AddToCart(ctx context.Context, rc RequestContext, productID int64, quantity int) error {
	values := url.Values{}
	values.Set("productId", strconv.FormatInt(productID, 10))
	values.Set("quantity", strconv.Itoa(quantity))
	return c.do(ctx, rc, http.MethodPost, "/api/cart/add", values, nil, nil)
}

// UpdateCartItem sets the quantity of one cart line. The server may reject a
// quantity beyond current stock; the caller refetches either way.
func (c *Client) UpdateCartItem(ctx context.Context, rc RequestContext, cartID int64, quantity int) error {
	values := url.Values{}
	values.Set("quantity", strconv.Itoa(quantity))
	return c.do(ctx, rc, http.MethodPut, pathID("/api/cart/update/%d", cartID), values, nil, nil)
}

// RemoveFromCart deletes one cart line.
func (c *Client) RemoveFromCart(ctx context.Context, rc RequestContext, cartID int64) error {
	return c.do(ctx, rc, http.MethodDelete, pathID("/api/cart/remove/%d", cartID), nil, nil, nil)
}

// ClearCart empties the caller's cart.
func (c *Client) ClearCart(ctx context.Context, rc RequestContext) error {
	return c.do(ctx, rc, http.MethodDelete, "/api/cart/clear", nil, nil, nil)
}
