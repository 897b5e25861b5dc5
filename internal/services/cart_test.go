package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"sareemahal/internal/backend"
	"sareemahal/internal/models"
)

// fakeCartBackend serves the cart endpoints over an in-memory line map.
type fakeCartBackend struct {
	mu    sync.Mutex
	items map[int64]models.CartItem
	next  int64
}

func newFakeCartBackend() *fakeCartBackend {
	return &fakeCartBackend{items: make(map[int64]models.CartItem), next: 1}
}

func (f *fakeCartBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		items := make([]models.CartItem, 0, len(f.items))
		for _, item := range f.items {
			items = append(items, item)
		}
		json.NewEncoder(w).Encode(items)
	})
	mux.HandleFunc("/api/cart/count", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		count := 0
		for _, item := range f.items {
			count += item.Quantity
		}
		json.NewEncoder(w).Encode(count)
	})
	mux.HandleFunc("/api/cart/add", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := f.next
		f.next++
		f.items[id] = models.CartItem{
			ID:       id,
			Product:  models.Product{ID: 10, Price: 300, Stock: 5},
			Quantity: 2,
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/cart/clear", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.items = make(map[int64]models.CartItem)
	})
	return mux
}

func TestCartServiceRequiresSession(t *testing.T) {
	cs := NewCartService(backend.NewClient("http://127.0.0.1:0", time.Second))

	_, err := cs.Fetch(context.Background(), backend.Anonymous)
	if !errors.Is(err, ErrLoginRequired) {
		t.Errorf("Fetch without token = %v, want ErrLoginRequired", err)
	}
	_, err = cs.AddToCart(context.Background(), backend.Anonymous, 1, 1)
	if !errors.Is(err, ErrLoginRequired) {
		t.Errorf("AddToCart without token = %v, want ErrLoginRequired", err)
	}
	_, err = cs.Clear(context.Background(), backend.Anonymous)
	if !errors.Is(err, ErrLoginRequired) {
		t.Errorf("Clear without token = %v, want ErrLoginRequired", err)
	}
}

func TestCartServiceMutateThenRefetch(t *testing.T) {
	fake := newFakeCartBackend()
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	cs := NewCartService(backend.NewClient(server.URL, time.Second))
	rc := backend.RequestContext{Token: "h.p.s"}

	state, err := cs.AddToCart(context.Background(), rc, 10, 2)
	if err != nil {
		t.Fatalf("AddToCart = %v", err)
	}
	if len(state.Items) != 1 || state.Count != 2 {
		t.Errorf("state after add = %+v, want 1 line with count 2", state)
	}

	state, err = cs.Clear(context.Background(), rc)
	if err != nil {
		t.Fatalf("Clear = %v", err)
	}
	if len(state.Items) != 0 || state.Count != 0 {
		t.Errorf("state after clear = %+v, want empty", state)
	}
}

func TestCartServiceSurfacesBackendVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Only 3 left in stock"})
	}))
	defer server.Close()

	cs := NewCartService(backend.NewClient(server.URL, time.Second))
	_, err := cs.AddToCart(context.Background(), backend.RequestContext{Token: "h.p.s"}, 10, 99)
	if err == nil {
		t.Fatal("AddToCart succeeded against a rejecting backend")
	}
	if got := backend.UserMessage(err, "fallback"); got != "Only 3 left in stock" {
		t.Errorf("UserMessage = %q, want the backend's message", got)
	}
}

func TestCartFolds(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{Price: 150}, Quantity: 2},
		{Product: models.Product{Price: 99.5}, Quantity: 1},
	}
	if got := CartTotal(items); got != 399.5 {
		t.Errorf("CartTotal = %v, want 399.5", got)
	}
	if got := CartItemCount(items); got != 3 {
		t.Errorf("CartItemCount = %v, want 3", got)
	}
	if got := CartTotal(nil); got != 0 {
		t.Errorf("CartTotal(nil) = %v, want 0", got)
	}
	if got := CartItemCount(nil); got != 0 {
		t.Errorf("CartItemCount(nil) = %v, want 0", got)
	}
}
