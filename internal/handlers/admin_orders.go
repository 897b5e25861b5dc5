package handlers

import (
	"net/http"
	"strconv"

	"sareemahal/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminOrdersPage lists every order. Search over order number, customer name,
// and email, plus the status filter, run client-side over this list. The
// detail modal shows computed line totals next to the stored grand total; the
// stored figure is displayed as-is, never recomputed.
func (h *Handler) AdminOrdersPage(c *gin.Context) {
	orders, err := h.api.AdminListOrders(c.Request.Context(), h.requestContext(c))
	if err != nil {
		h.adminListError(c, err, "admin_orders.html", "Manage Orders", gin.H{
			"orders":   []models.Order{},
			"statuses": models.OrderStatuses,
		})
		return
	}

	c.HTML(http.StatusOK, "admin_orders.html", h.pageData(c, "Manage Orders", gin.H{
		"orders":   orders,
		"statuses": models.OrderStatuses,
	}))
}

// AdminUpdateOrderStatus sets an order's status from the closed set. Any
// status may be assigned regardless of the current one; on success the page
// replaces the row's status optimistically.
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown order status"})
		return
	}

	if err := h.api.AdminUpdateOrderStatus(c.Request.Context(), h.requestContext(c), orderID, req.Status); err != nil {
		h.jsonError(c, err, "Could not update the order status. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated", "status": req.Status})
}
