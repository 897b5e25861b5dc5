package services

import (
	"context"
	"errors"
	"log"

	"sareemahal/internal/backend"
	"sareemahal/internal/models"
)

// ErrLoginRequired is returned by cart mutations attempted without a session.
var ErrLoginRequired = errors.New("please log in to use the cart")

// CartService mirrors the server-side cart. Every mutation calls the backend
// and then refetches items and count instead of merging optimistically, so the
// mirror always converges to server-computed stock and price.
type CartService struct {
	api *backend.Client
}

// NewCartService creates a CartService backed by the given API client.
func NewCartService(api *backend.Client) *CartService {
	return &CartService{api: api}
}

// CartState is the refreshed mirror after a fetch or mutation.
type CartState struct {
	Items []models.CartItem
	Count int
}

// Fetch loads the current cart lines and count.
func (cs *CartService) Fetch(ctx context.Context, rc backend.RequestContext) (CartState, error) {
	if rc.Token == "" {
		return CartState{}, ErrLoginRequired
	}

	items, err := cs.api.GetCart(ctx, rc)
	if err != nil {
		return CartState{}, err
	}
	count, err := cs.api.GetCartCount(ctx, rc)
	if err != nil {
		return CartState{}, err
	}
	return CartState{Items: items, Count: count}, nil
}

// AddToCart adds a product, then refetches. It fails fast without a session.
func (cs *CartService) AddToCart(ctx context.Context, rc backend.RequestContext, productID int64, quantity int) (CartState, error) {
	if rc.Token == "" {
		return CartState{}, ErrLoginRequired
	}
	if quantity < 1 {
		quantity = 1
	}

	if err := cs.api.AddToCart(ctx, rc, productID, quantity); err != nil {
		log.Printf("CartService.AddToCart - Error adding product %d: %v", productID, err)
		return CartState{}, err
	}
	return cs.Fetch(ctx, rc)
}

// UpdateItem sets one line's quantity, then refetches.
func (cs *CartService) UpdateItem(ctx context.Context, rc backend.RequestContext, cartID int64, quantity int) (CartState, error) {
	if rc.Token == "" {
		return CartState{}, ErrLoginRequired
	}

	if err := cs.api.UpdateCartItem(ctx, rc, cartID, quantity); err != nil {
		log.Printf("CartService.UpdateItem - Error updating item %d: %v", cartID, err)
		return CartState{}, err
	}
	return cs.Fetch(ctx, rc)
}

// RemoveItem deletes one line, then refetches.
func (cs *CartService) RemoveItem(ctx context.Context, rc backend.RequestContext, cartID int64) (CartState, error) {
	if rc.Token == "" {
		return CartState{}, ErrLoginRequired
	}

	if err := cs.api.RemoveFromCart(ctx, rc, cartID); err != nil {
		log.Printf("CartService.RemoveItem - Error removing item %d: %v", cartID, err)
		return CartState{}, err
	}
	return cs.Fetch(ctx, rc)
}

// Clear empties the cart, then refetches.
func (cs *CartService) Clear(ctx context.Context, rc backend.RequestContext) (CartState, error) {
	if rc.Token == "" {
		return CartState{}, ErrLoginRequired
	}

	if err := cs.api.ClearCart(ctx, rc); err != nil {
		log.Printf("CartService.Clear - Error clearing cart: %v", err)
		return CartState{}, err
	}
	return cs.Fetch(ctx, rc)
}

// CartTotal folds price*quantity over the lines. Derived on demand, never
// stored.
func CartTotal(items []models.CartItem) float64 {
	total := 0.0
	for i := range items {
		total += items[i].LineTotal()
	}
	return total
}

// CartItemCount folds quantity over the lines.
func CartItemCount(items []models.CartItem) int {
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count
}
