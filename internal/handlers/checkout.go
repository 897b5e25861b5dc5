package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"sareemahal/internal/backend"
	"sareemahal/internal/models"
	"sareemahal/internal/services"

	"github.com/gin-gonic/gin"
)

// CheckoutPage renders the current wizard step. Arriving with an empty cart
// redirects straight back to the cart view; checkout is never enterable with
// nothing to buy.
func (h *Handler) CheckoutPage(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		h.setFlash(c, "error", "Please log in to check out")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	state, err := h.carts.Fetch(c.Request.Context(), h.requestContext(c))
	if err != nil {
		log.Printf("CheckoutPage - Error loading cart: %v", err)
		h.setFlash(c, "error", "Could not load your cart. Please try again.")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	if len(state.Items) == 0 {
		h.setFlash(c, "error", "Your cart is empty")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	sessionID := h.browserSession(c)
	requested, _ := strconv.Atoi(c.DefaultQuery("step", "0"))
	step := h.checkouts.CurrentStep(sessionID, requested)
	draft := h.checkouts.Draft(sessionID)

	// Prefill the full name from the session on a fresh draft.
	if draft.Address.FullName == "" && draft.Step == models.CheckoutStepAddress {
		draft.Address.FullName = user.Name
	}

	c.HTML(http.StatusOK, "checkout.html", h.pageData(c, "Checkout", gin.H{
		"step":        step,
		"draft":       draft,
		"items":       state.Items,
		"summary":     services.Summarize(state.Items),
		"razorpayKey": h.cfg.RazorpayKeyID,
	}))
}

// CheckoutAddress handles step 1. Validation failure re-renders the address
// step with the first failing field's message; success advances to payment.
func (h *Handler) CheckoutAddress(c *gin.Context) {
	var address models.ShippingAddress
	if err := c.ShouldBind(&address); err != nil {
		h.setFlash(c, "error", "Please fill in the address form")
		c.Redirect(http.StatusSeeOther, "/checkout?step=1")
		return
	}

	if err := h.checkouts.SaveAddress(h.browserSession(c), address); err != nil {
		h.setFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/checkout?step=1")
		return
	}
	c.Redirect(http.StatusSeeOther, "/checkout?step=2")
}

// CheckoutPayment handles step 2: payment method choice plus optional notes.
func (h *Handler) CheckoutPayment(c *gin.Context) {
	method := c.PostForm("paymentMethod")
	notes := c.PostForm("orderNotes")

	if err := h.checkouts.SavePayment(h.browserSession(c), method, notes); err != nil {
		h.setFlash(c, "error", "Please choose a payment method")
		c.Redirect(http.StatusSeeOther, "/checkout?step=2")
		return
	}
	c.Redirect(http.StatusSeeOther, "/checkout?step=3")
}

// PlaceOrder is the review step's final action for cash on delivery: one
// create-order call whose response id drives the confirmation view.
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID := h.browserSession(c)
	draft := h.checkouts.Draft(sessionID)
	if draft.Step < models.CheckoutStepReview {
		c.Redirect(http.StatusSeeOther, "/checkout")
		return
	}
	if draft.PaymentMethod != models.PaymentMethodCOD {
		// Online payments finalize through the verify callback instead.
		c.Redirect(http.StatusSeeOther, "/checkout?step=3")
		return
	}

	order, err := h.api.CreateOrder(c.Request.Context(), h.requestContext(c), backend.CreateOrderRequest{
		ShippingAddress: formatShippingAddress(draft.Address),
		PaymentMethod:   draft.PaymentMethod,
		OrderNotes:      draft.OrderNotes,
	})
	if err != nil {
		log.Printf("PlaceOrder - Error creating order: %v", err)
		h.setFlash(c, "error", backend.UserMessage(err, "Could not place your order. Please try again."))
		c.Redirect(http.StatusSeeOther, "/checkout?step=3")
		return
	}

	h.checkouts.Clear(sessionID)
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/orders/confirmation/%d", order.ID))
}

// InitiatePayment creates the server-side payment intent (amount only) and
// returns everything the hosted widget needs, including prefilled contact
// details from the draft.
func (h *Handler) InitiatePayment(c *gin.Context) {
	user := h.currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Please log in", "redirect": "/login"})
		return
	}

	sessionID := h.browserSession(c)
	draft := h.checkouts.Draft(sessionID)
	if draft.Step < models.CheckoutStepReview || draft.PaymentMethod != models.PaymentMethodRazorpay {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Complete the checkout steps first"})
		return
	}

	state, err := h.carts.Fetch(c.Request.Context(), h.requestContext(c))
	if err != nil || len(state.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Your cart is empty", "redirect": "/cart"})
		return
	}

	amount := services.Total(services.Subtotal(state.Items))
	intent, err := h.api.CreatePaymentOrder(c.Request.Context(), h.requestContext(c), amount)
	if err != nil {
		h.jsonError(c, err, "Could not start the payment. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"key":      h.cfg.RazorpayKeyID,
		"orderId":  intent.ID,
		"amount":   intent.Amount,
		"currency": intent.Currency,
		"prefill": gin.H{
			"name":    draft.Address.FullName,
			"email":   user.Email,
			"contact": draft.Address.Phone,
		},
	})
}

// VerifyPayment is called by the page after the widget's completion callback.
// Only a successful verification finalizes the order; a failure is reported
// and never retried automatically.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payment callback"})
		return
	}

	sessionID := h.browserSession(c)
	draft := h.checkouts.Draft(sessionID)

	result, err := h.api.VerifyPayment(c.Request.Context(), h.requestContext(c), backend.VerifyPaymentRequest{
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		ShippingAddress:   formatShippingAddress(draft.Address),
		OrderNotes:        draft.OrderNotes,
	})
	if err != nil {
		log.Printf("VerifyPayment - Verification failed: %v", err)
		h.jsonError(c, err, "Payment verification failed. You have not been charged twice; please contact support if the amount was deducted.")
		return
	}

	h.checkouts.Clear(sessionID)
	c.JSON(http.StatusOK, gin.H{"success": true, "orderId": result.OrderID, "redirect": fmt.Sprintf("/orders/confirmation/%d", result.OrderID)})
}

// OrderConfirmationPage is the post-checkout landing view.
func (h *Handler) OrderConfirmationPage(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "order_confirmation.html", h.pageData(c, "Order Placed", gin.H{
		"orderId": orderID,
	}))
}

// formatShippingAddress flattens the draft address into the single-line form
// the order record stores.
func formatShippingAddress(a models.ShippingAddress) string {
	line := fmt.Sprintf("%s, %s, %s", a.FullName, a.Phone, a.AddressLine1)
	if a.AddressLine2 != "" {
		line += ", " + a.AddressLine2
	}
	line += fmt.Sprintf(", %s, %s - %s", a.City, a.State, a.Pincode)
	if a.Landmark != "" {
		line += " (near " + a.Landmark + ")"
	}
	return line
}
