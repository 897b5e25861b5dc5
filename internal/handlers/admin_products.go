package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"sareemahal/internal/backend"
	"sareemahal/internal/models"
	"sareemahal/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductForm = errors.New("Please fill in all required product fields")
	errInvalidPrice       = errors.New("Price must be a valid non-negative number")
	errInvalidStock       = errors.New("Stock must be a valid non-negative number")
)

// AdminProductsPage lists the full catalog. Text search and category filter
// run client-side over this list, not as server queries.
func (h *Handler) AdminProductsPage(c *gin.Context) {
	products, err := h.api.AdminListProducts(c.Request.Context(), h.requestContext(c))
	if err != nil {
		h.adminListError(c, err, "admin_products.html", "Manage Products", gin.H{
			"products": []models.Product{},
			"vocab":    services.Vocabulary{},
		})
		return
	}

	c.HTML(http.StatusOK, "admin_products.html", h.pageData(c, "Manage Products", gin.H{
		"products": products,
		"vocab":    h.vocab.Get(c.Request.Context()),
	}))
}

// AdminAddProductPage renders the dedicated add-product flow.
func (h *Handler) AdminAddProductPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_add_product.html", h.pageData(c, "Add Product", gin.H{
		"vocab": h.vocab.Get(c.Request.Context()),
	}))
}

// HandleAdminAddProduct creates a product from the multipart form. Every
// uploaded image must validate and encode before the create call goes out.
func (h *Handler) HandleAdminAddProduct(c *gin.Context) {
	payload, err := h.bindProductPayload(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "admin_add_product.html", h.pageData(c, "Add Product", gin.H{
			"error": err.Error(),
			"vocab": h.vocab.Get(c.Request.Context()),
		}))
		return
	}

	if _, err := h.api.AdminCreateProduct(c.Request.Context(), h.requestContext(c), payload); err != nil {
		log.Printf("HandleAdminAddProduct - Error creating product: %v", err)
		c.HTML(http.StatusBadGateway, "admin_add_product.html", h.pageData(c, "Add Product", gin.H{
			"error": backend.UserMessage(err, "Could not create the product. Please try again."),
			"vocab": h.vocab.Get(c.Request.Context()),
		}))
		return
	}

	h.setFlash(c, "success", "Product created")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// HandleAdminUpdateProduct saves the edit modal in a single PUT. The ordered
// image list arrives as "existing:<source>" / "new:<i>" references so
// persisted and newly added images stay distinguishable; any image failure
// aborts before the network call.
func (h *Handler) HandleAdminUpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	payload, err := h.bindProductPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	product, err := h.api.AdminUpdateProduct(c.Request.Context(), h.requestContext(c), productID, payload)
	if err != nil {
		h.jsonError(c, err, "Could not save the product. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated", "product": product})
}

// bindProductPayload parses the shared create/edit multipart form: text
// fields, numeric validation for price and stock, and the resolved ordered
// image list.
func (h *Handler) bindProductPayload(c *gin.Context) (backend.AdminProductPayload, error) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		return backend.AdminProductPayload{}, errInvalidProductForm
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return backend.AdminProductPayload{}, errInvalidPrice
	}
	stock, err := strconv.Atoi(form.Stock)
	if err != nil || stock < 0 {
		return backend.AdminProductPayload{}, errInvalidStock
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		return backend.AdminProductPayload{}, errInvalidProductForm
	}
	refs := multipartForm.Value["imageOrder"]
	uploads := multipartForm.File["newImages"]

	sources, err := services.ResolveImageOrder(refs, uploads)
	if err != nil {
		return backend.AdminProductPayload{}, err
	}

	return backend.AdminProductPayload{
		Name:        form.Name,
		Description: form.Description,
		Category:    form.Category,
		Price:       price,
		Stock:       stock,
		Color:       form.Color,
		Fabric:      form.Fabric,
		Size:        form.Size,
		IsFeatured:  form.IsFeatured,
		IsActive:    form.IsActive,
		ImagePaths:  models.EncodeImagePaths(sources),
	}, nil
}

// AdminDeleteProduct removes a product after the page's confirmation prompt.
// The page drops the row locally on success, no refetch.
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	if err := h.api.AdminDeleteProduct(c.Request.Context(), h.requestContext(c), productID); err != nil {
		h.jsonError(c, err, "Could not delete the product. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// adminListError renders an admin list page in its failed state, applying the
// error taxonomy for page loads: expired sessions go to login, valid but
// non-admin sessions go home.
func (h *Handler) adminListError(c *gin.Context, err error, page, title string, extra gin.H) {
	switch {
	case backend.IsUnauthorized(err):
		h.clearToken(c)
		h.setFlash(c, "error", "Session expired. Please log in again.")
		c.Redirect(http.StatusSeeOther, "/login")
	case backend.IsForbidden(err):
		h.setFlash(c, "error", "You are not authorized to view that page")
		c.Redirect(http.StatusSeeOther, "/")
	default:
		log.Printf("adminListError - Error loading %s: %v", page, err)
		extra["error"] = "Could not load the list. Please try again."
		c.HTML(http.StatusOK, page, h.pageData(c, title, extra))
	}
}
