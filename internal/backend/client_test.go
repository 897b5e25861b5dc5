package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestBearerHeaderThreading(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]string{})
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)

	if _, err := c.Categories(context.Background()); err != nil {
		t.Fatalf("Categories = %v", err)
	}
	if got != "" {
		t.Errorf("anonymous call sent Authorization %q", got)
	}

	if _, err := c.GetCart(context.Background(), RequestContext{Token: "h.p.s"}); err != nil {
		t.Fatalf("GetCart = %v", err)
	}
	if got != "Bearer h.p.s" {
		t.Errorf("Authorization = %q, want Bearer h.p.s", got)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{"unauthorized with message field", http.StatusUnauthorized, `{"message":"Token expired"}`, IsUnauthorized, "Token expired"},
		{"forbidden with error field", http.StatusForbidden, `{"error":"Admins only"}`, IsForbidden, "Admins only"},
		{"not found", http.StatusNotFound, `{}`, IsNotFound, ""},
		{"plain 500", http.StatusInternalServerError, `oops`, func(err error) bool {
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.Status == http.StatusInternalServerError
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(server.URL, time.Second)
			_, err := c.GetProduct(context.Background(), 1)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tt.check(err) {
				t.Errorf("taxonomy check failed for %v", err)
			}
			if IsTransient(err) {
				t.Errorf("backend verdict classified as transient: %v", err)
			}
			if tt.message != "" {
				if got := UserMessage(err, "fallback"); got != tt.message {
					t.Errorf("UserMessage = %q, want %q", got, tt.message)
				}
			}
		})
	}
}

func TestTransportFailureIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(server.URL, time.Second)
	_, err := c.GetProduct(context.Background(), 1)
	if !IsTransient(err) {
		t.Errorf("connection failure = %v, want transient", err)
	}
	if IsAuthError(err) {
		t.Errorf("connection failure classified as auth error: %v", err)
	}
}

func TestSignInTokenFallback(t *testing.T) {
	tests := []struct {
		name      string
		response  map[string]interface{}
		wantToken string
		wantErr   error
		wantRole  string
	}{
		{
			name:      "token field",
			response:  map[string]interface{}{"token": "t.t.t", "roles": []string{"ROLE_ADMIN"}},
			wantToken: "t.t.t",
			wantRole:  "ADMIN",
		},
		{
			name:      "accessToken fallback",
			response:  map[string]interface{}{"accessToken": "a.a.a", "roles": []string{"ROLE_USER"}},
			wantToken: "a.a.a",
			wantRole:  "USER",
		},
		{
			name:      "token wins over accessToken",
			response:  map[string]interface{}{"token": "t.t.t", "accessToken": "a.a.a"},
			wantToken: "t.t.t",
			wantRole:  "USER",
		},
		{
			name:     "neither field",
			response: map[string]interface{}{"id": 1},
			wantErr:  ErrNoToken,
		},
		{
			name:      "unprefixed role kept as-is",
			response:  map[string]interface{}{"token": "t.t.t", "roles": []string{"MANAGER"}},
			wantToken: "t.t.t",
			wantRole:  "MANAGER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/auth/signin" || r.Method != http.MethodPost {
					http.NotFound(w, r)
					return
				}
				json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			c := NewClient(server.URL, time.Second)
			result, err := c.SignIn(context.Background(), "a@b.com", "secret")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SignIn = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SignIn = %v", err)
			}
			if result.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", result.Token, tt.wantToken)
			}
			if result.User.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", result.User.Role, tt.wantRole)
			}
		})
	}
}

func TestProductQueryValues(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}, "totalPages": 0, "totalElements": 0})
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	_, err := c.ListProducts(context.Background(), ProductQuery{
		Page: 2, Size: 12, SortBy: "price", SortDir: "desc",
		Category: "Silk", MinPrice: 100, MaxPrice: 2000,
	})
	if err != nil {
		t.Fatalf("ListProducts = %v", err)
	}

	values, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("ParseQuery(%q) = %v", gotQuery, err)
	}
	want := map[string]string{
		"page": "2", "size": "12", "sortBy": "price", "sortDir": "desc",
		"category": "Silk", "minPrice": "100", "maxPrice": "2000",
	}
	for key, expected := range want {
		if got := values.Get(key); got != expected {
			t.Errorf("query param %s = %q, want %q", key, got, expected)
		}
	}
	if values.Has("color") {
		t.Errorf("query %q carries an empty color filter", gotQuery)
	}
}
