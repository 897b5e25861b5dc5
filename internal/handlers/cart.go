package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"sareemahal/internal/services"

	"github.com/gin-gonic/gin"
)

// CartPage renders the editable cart. Visitors without a session get a
// friendly please-log-in view instead of an error; no fetch is attempted.
func (h *Handler) CartPage(c *gin.Context) {
	if h.currentUser(c) == nil {
		c.HTML(http.StatusOK, "cart.html", h.pageData(c, "Your Cart", gin.H{
			"needsLogin": true,
		}))
		return
	}

	state, err := h.carts.Fetch(c.Request.Context(), h.requestContext(c))
	if err != nil {
		log.Printf("CartPage - Error loading cart: %v", err)
		c.HTML(http.StatusOK, "cart.html", h.pageData(c, "Your Cart", gin.H{
			"error": "Could not load your cart. Please try again.",
		}))
		return
	}

	c.HTML(http.StatusOK, "cart.html", h.pageData(c, "Your Cart", gin.H{
		"items":   state.Items,
		"count":   state.Count,
		"summary": services.Summarize(state.Items),
	}))
}

// AddToCart is the JSON endpoint behind every "add to cart" button.
func (h *Handler) AddToCart(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"productId" binding:"required"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	state, err := h.carts.AddToCart(c.Request.Context(), h.requestContext(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Please log in to add items to your cart", "redirect": "/login"})
			return
		}
		h.jsonError(c, err, "Could not add to cart. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart", "count": state.Count})
}

// UpdateCartItem sets one line's quantity and returns the refreshed summary.
// The page disables the line's controls while this call is in flight.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid cart item"})
		return
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid quantity"})
		return
	}

	state, err := h.carts.UpdateItem(c.Request.Context(), h.requestContext(c), cartID, quantity)
	if err != nil {
		h.jsonError(c, err, "Could not update your cart. Please try again.")
		return
	}
	h.cartStateJSON(c, "Cart updated", state)
}

// RemoveFromCart deletes one line.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid cart item"})
		return
	}

	state, err := h.carts.RemoveItem(c.Request.Context(), h.requestContext(c), cartID)
	if err != nil {
		h.jsonError(c, err, "Could not remove the item. Please try again.")
		return
	}
	h.cartStateJSON(c, "Item removed", state)
}

// ClearCart empties the cart. The page shows a confirmation modal before
// calling this.
func (h *Handler) ClearCart(c *gin.Context) {
	state, err := h.carts.Clear(c.Request.Context(), h.requestContext(c))
	if err != nil {
		h.jsonError(c, err, "Could not clear your cart. Please try again.")
		return
	}
	h.cartStateJSON(c, "Cart cleared", state)
}

// CartCount feeds the navbar badge.
func (h *Handler) CartCount(c *gin.Context) {
	if h.currentUser(c) == nil {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	state, err := h.carts.Fetch(c.Request.Context(), h.requestContext(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": state.Count})
}

func (h *Handler) cartStateJSON(c *gin.Context, message string, state services.CartState) {
	summary := services.Summarize(state.Items)
	lines := make([]gin.H, 0, len(state.Items))
	for i := range state.Items {
		item := &state.Items[i]
		lines = append(lines, gin.H{
			"id":        item.ID,
			"quantity":  item.Quantity,
			"stock":     item.Product.Stock,
			"lineTotal": services.FormatINR(item.LineTotal()),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"count":   state.Count,
		"items":   lines,
		"summary": gin.H{
			"subtotal": services.FormatINR(summary.Subtotal),
			"tax":      services.FormatINR(summary.Tax),
			"shipping": services.FormatINR(summary.Shipping),
			"total":    services.FormatINR(summary.Total),
		},
	})
}
