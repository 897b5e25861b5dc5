package services

import (
	"sort"
	"sync"
)

// CarouselState tracks the current image index per product id for one browser
// session's catalog view. One keyed map serves every card; the map is reset
// whenever the listed id set changes so it never grows across long sessions.
type CarouselState struct {
	mu        sync.Mutex
	signature string
	indexes   map[int64]int
}

// NewCarouselState creates an empty carousel map.
func NewCarouselState() *CarouselState {
	return &CarouselState{indexes: make(map[int64]int)}
}

// SetProducts declares the currently listed product ids. A changed id set
// clears all stored indexes.
func (c *CarouselState) SetProducts(ids []int64) {
	sig := idSignature(ids)

	c.mu.Lock()
	defer c.mu.Unlock()
	if sig != c.signature {
		c.signature = sig
		c.indexes = make(map[int64]int)
	}
}

// Index returns the current image index for a product, defaulting to 0.
func (c *CarouselState) Index(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexes[productID]
}

// Next advances the product's image index with wraparound over n images.
func (c *CarouselState) Next(productID int64, n int) int {
	return c.step(productID, n, 1)
}

// Prev steps the product's image index backwards with wraparound.
func (c *CarouselState) Prev(productID int64, n int) int {
	return c.step(productID, n, -1)
}

func (c *CarouselState) step(productID int64, n, delta int) int {
	if n <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	index := (c.indexes[productID] + delta + n) % n
	c.indexes[productID] = index
	return index
}

func idSignature(ids []int64) string {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	sig := make([]byte, 0, len(sorted)*8)
	for _, id := range sorted {
		for shift := 0; shift < 64; shift += 8 {
			sig = append(sig, byte(id>>shift))
		}
	}
	return string(sig)
}

// ViewStateService hands out one CarouselState per browser session.
type ViewStateService struct {
	mu        sync.Mutex
	carousels map[string]*CarouselState
}

// NewViewStateService creates an empty per-session view-state store.
func NewViewStateService() *ViewStateService {
	return &ViewStateService{carousels: make(map[string]*CarouselState)}
}

// Carousel returns the session's carousel map, creating it on first use.
func (v *ViewStateService) Carousel(sessionID string) *CarouselState {
	v.mu.Lock()
	defer v.mu.Unlock()
	state, ok := v.carousels[sessionID]
	if !ok {
		state = NewCarouselState()
		v.carousels[sessionID] = state
	}
	return state
}

// PageWindow returns the page-button indexes to render: at most five pages
// starting at the current page, clamped so the window never runs past the
// last page. Pages are 0-indexed.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}
	count := totalPages
	if count > 5 {
		count = 5
	}
	start := current
	if start > totalPages-count {
		start = totalPages - count
	}
	if start < 0 {
		start = 0
	}
	window := make([]int, count)
	for i := range window {
		window[i] = start + i
	}
	return window
}

// ClampQuantity keeps a requested quantity within [1, stock]. A zero-stock
// product clamps to 0, which the pages render as disabled controls.
func ClampQuantity(quantity, stock int) int {
	if stock <= 0 {
		return 0
	}
	if quantity < 1 {
		return 1
	}
	if quantity > stock {
		return stock
	}
	return quantity
}
