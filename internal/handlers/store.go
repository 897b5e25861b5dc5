package handlers

import (
	"log"
	"net/http"
	"strconv"

	"sareemahal/internal/backend"
	"sareemahal/internal/models"
	"sareemahal/internal/services"

	"github.com/gin-gonic/gin"
)

// Catalog pages use a fixed page size of 12 cards.
const catalogPageSize = 12

// relatedProductCount caps the "you may also like" strip on the detail page.
const relatedProductCount = 4

// HomePage renders the landing page with the featured products strip.
func (h *Handler) HomePage(c *gin.Context) {
	featured, err := h.api.FeaturedProducts(c.Request.Context())
	if err != nil {
		log.Printf("HomePage - Error loading featured products: %v", err)
		featured = []models.Product{}
	}

	c.HTML(http.StatusOK, "home.html", h.pageData(c, "Sarees for Every Occasion", gin.H{
		"featured": featured,
	}))
}

// catalogQuery reads the filter, sort, and page state mirrored in the URL, so
// every catalog view is bookmarkable and back/forward-navigable.
func catalogQuery(c *gin.Context) (backend.ProductQuery, string) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	minPrice, _ := strconv.ParseFloat(c.Query("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("maxPrice"), 64)

	query := backend.ProductQuery{
		Page:     page,
		Size:     catalogPageSize,
		SortBy:   c.DefaultQuery("sortBy", "id"),
		SortDir:  c.DefaultQuery("sortDir", "asc"),
		Category: c.Query("category"),
		Color:    c.Query("color"),
		Fabric:   c.Query("fabric"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
	return query, c.Query("search")
}

// ProductsPage lists, searches, filters, and paginates the catalog. Free-text
// search routes to the dedicated search endpoint instead of the listing one.
func (h *Handler) ProductsPage(c *gin.Context) {
	query, search := catalogQuery(c)

	var (
		page models.Page[models.Product]
		err  error
	)
	if search != "" {
		page, err = h.api.SearchProducts(c.Request.Context(), search, query.Page, query.Size)
	} else {
		page, err = h.api.ListProducts(c.Request.Context(), query)
	}
	if err != nil {
		log.Printf("ProductsPage - Error loading products: %v", err)
		c.HTML(http.StatusOK, "products.html", h.pageData(c, "Shop Sarees", gin.H{
			"error":    "Could not load products. Please try again.",
			"products": []models.Product{},
			"vocab":    h.vocab.Get(c.Request.Context()),
			"query":    query,
			"search":   search,
		}))
		return
	}

	ids := make([]int64, 0, len(page.Content))
	for _, p := range page.Content {
		ids = append(ids, p.ID)
	}
	carousel := h.viewstate.Carousel(h.browserSession(c))
	carousel.SetProducts(ids)

	imageIndexes := make(map[int64]int, len(ids))
	for _, id := range ids {
		imageIndexes[id] = carousel.Index(id)
	}

	c.HTML(http.StatusOK, "products.html", h.pageData(c, "Shop Sarees", gin.H{
		"products":      page.Content,
		"totalPages":    page.TotalPages,
		"totalElements": page.TotalElements,
		"pageWindow":    services.PageWindow(query.Page, page.TotalPages),
		"hasPrev":       query.Page > 0,
		"hasNext":       query.Page < page.TotalPages-1,
		"vocab":         h.vocab.Get(c.Request.Context()),
		"query":         query,
		"search":        search,
		"imageIndexes":  imageIndexes,
	}))
}

// CardCarousel steps one product card's image index. It is its own endpoint
// so image navigation never triggers the card's navigate-to-detail click.
func (h *Handler) CardCarousel(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid image count"})
		return
	}

	carousel := h.viewstate.Carousel(h.browserSession(c))
	var index int
	if c.Param("dir") == "prev" {
		index = carousel.Prev(productID, count)
	} else {
		index = carousel.Next(productID, count)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "index": index})
}

// ProductDetailPage renders one product with its gallery and quantity
// stepper. A stale id redirects to the catalog; other failures keep the user
// here with a message.
func (h *Handler) ProductDetailPage(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.setFlash(c, "error", "That product could not be found")
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	product, err := h.api.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if backend.IsNotFound(err) {
			h.setFlash(c, "error", "That product is no longer available")
			c.Redirect(http.StatusSeeOther, "/products")
			return
		}
		log.Printf("ProductDetailPage - Error loading product %d: %v", productID, err)
		c.HTML(http.StatusOK, "product_detail.html", h.pageData(c, "Product", gin.H{
			"error": "Could not load this product. Please try again.",
		}))
		return
	}

	related := h.relatedProducts(c, product.ID)

	quantity, _ := strconv.Atoi(c.DefaultQuery("qty", "1"))
	quantity = services.ClampQuantity(quantity, product.Stock)

	imageIndex, _ := strconv.Atoi(c.DefaultQuery("image", "0"))
	imageCount := len(product.ImageList())
	if imageCount > 0 {
		imageIndex = ((imageIndex % imageCount) + imageCount) % imageCount
	} else {
		imageIndex = 0
	}

	c.HTML(http.StatusOK, "product_detail.html", h.pageData(c, product.Name, gin.H{
		"product":    product,
		"related":    related,
		"quantity":   quantity,
		"imageIndex": imageIndex,
		"outOfStock": product.Stock <= 0,
	}))
}

// relatedProducts loads a small unfiltered set and excludes the current
// product by identity. Failures degrade to an empty strip.
func (h *Handler) relatedProducts(c *gin.Context, excludeID int64) []models.Product {
	page, err := h.api.ListProducts(c.Request.Context(), backend.ProductQuery{Size: relatedProductCount + 1})
	if err != nil {
		log.Printf("relatedProducts - Error loading related products: %v", err)
		return nil
	}

	related := make([]models.Product, 0, relatedProductCount)
	for _, p := range page.Content {
		if p.ID == excludeID {
			continue
		}
		related = append(related, p)
		if len(related) == relatedProductCount {
			break
		}
	}
	return related
}
