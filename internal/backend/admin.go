package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"sareemahal/internal/models"
)

// AdminProductPayload is the create/update body for the admin catalog. Every
// image, existing or new, is already resolved to a storable source before this
// is sent.
type AdminProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Color       string  `json:"color"`
	Fabric      string  `json:"fabric"`
	Size        string  `json:"size"`
	IsFeatured  bool    `json:"isFeatured"`
	IsActive    bool    `json:"isActive"`
	ImagePaths  string  `json:"imagePaths"`
}

// AdminListProducts fetches the full catalog; the admin pages filter it
// locally.
func (c *Client) AdminListProducts(ctx context.Context, rc RequestContext) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, rc, http.MethodGet, "/api/admin/products", nil, nil, &products)
	return products, err
}

// AdminCreateProduct adds a catalog product.
func (c *Client) AdminCreateProduct(ctx context.Context, rc RequestContext, payload AdminProductPayload) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, rc, http.MethodPost, "/api/admin/products", nil, payload, &product)
	return product, err
}

// AdminUpdateProduct replaces a catalog product in a single PUT.
func (c *Client) AdminUpdateProduct(ctx context.Context, rc RequestContext, id int64, payload AdminProductPayload) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, rc, http.MethodPut, pathID("/api/admin/products/%d", id), nil, payload, &product)
	return product, err
}

// AdminDeleteProduct removes a catalog product.
func (c *Client) AdminDeleteProduct(ctx context.Context, rc RequestContext, id int64) error {
	return c.do(ctx, rc, http.MethodDelete, pathID("/api/admin/products/%d", id), nil, nil, nil)
}

// AdminListOrders fetches every order; search and status filtering happen in
// the page.
func (c *Client) AdminListOrders(ctx context.Context, rc RequestContext) ([]models.Order, error) {
	var orders []models.Order
	err := c.do(ctx, rc, http.MethodGet, "/api/admin/orders", nil, nil, &orders)
	return orders, err
}

// AdminUpdateOrderStatus sets an order's status. Any status from the closed
// set may be assigned regardless of the current one.
func (c *Client) AdminUpdateOrderStatus(ctx context.Context, rc RequestContext, id int64, status string) error {
	values := url.Values{}
	values.Set("status", status)
	return c.do(ctx, rc, http.MethodPut, pathID("/api/admin/orders/%d/status", id), values, nil, nil)
}

// AdminListUsers fetches every account.
func (c *Client) AdminListUsers(ctx context.Context, rc RequestContext) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, rc, http.MethodGet, "/api/admin/users", nil, nil, &users)
	return users, err
}

// AdminDeleteUser removes an account. The UI never offers this for admins.
func (c *Client) AdminDeleteUser(ctx context.Context, rc RequestContext, id int64) error {
	return c.do(ctx, rc, http.MethodDelete, pathID("/api/admin/users/%d", id), nil, nil, nil)
}

// AdminUpdateUserStatus activates or deactivates an account.
func (c *Client) AdminUpdateUserStatus(ctx context.Context, rc RequestContext, id int64, active bool) error {
	values := url.Values{}
	values.Set("active", strconv.FormatBool(active))
	return c.do(ctx, rc, http.MethodPut, pathID("/api/admin/users/%d/status", id), values, nil, nil)
}
