package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sareemahal/internal/models"
)

// ProductQuery is the catalog listing request: filters plus page/sort state.
// Zero values mean "not filtered".
type ProductQuery struct {
	Page     int
	Size     int
	SortBy   string
	SortDir  string
	Category string
	Color    string
	Fabric   string
	MinPrice float64
	MaxPrice float64
}

func (q ProductQuery) values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("size", strconv.Itoa(q.Size))
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.SortDir != "" {
		values.Set("sortDir", q.SortDir)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Color != "" {
		values.Set("color", q.Color)
	}
	if q.Fabric != "" {
		values.Set("fabric", q.Fabric)
	}
	if q.MinPrice > 0 {
		values.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		values.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	return values
}

// ListProducts fetches one catalog page.
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) (models.Page[models.Product], error) {
	var page models.Page[models.Product]
	err := c.do(ctx, Anonymous, http.MethodGet, "/api/products", query.values(), nil, &page)
	return page, err
}

// SearchProducts routes free-text search to the dedicated search endpoint.
func (c *Client) SearchProducts(ctx context.Context, text string, page, size int) (models.Page[models.Product], error) {
	values := url.Values{}
	values.Set("query", text)
	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))

	var result models.Page[models.Product]
	err := c.do(ctx, Anonymous, http.MethodGet, "/api/products/search", values, nil, &result)
	return result, err
}

// GetProduct fetches one product by id. A stale id yields a 404 APIError.
func (c *Client) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, Anonymous, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, nil, &product)
	return product, err
}

// FeaturedProducts fetches the home-page featured set.
func (c *Client) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, Anonymous, http.MethodGet, "/api/products/featured", nil, nil, &products)
	return products, err
}

// Categories returns the filter vocabulary of known categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "/api/products/categories")
}

// Colors returns the filter vocabulary of known colors.
func (c *Client) Colors(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "/api/products/colors")
}

// Fabrics returns the filter vocabulary of known fabrics.
func (c *Client) Fabrics(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "/api/products/fabrics")
}

func (c *Client) stringList(ctx context.Context, path string) ([]string, error) {
	var list []string
	err := c.do(ctx, Anonymous, http.MethodGet, path, nil, nil, &list)
	return list, err
}
