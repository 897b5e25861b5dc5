package services

import (
	"sareemahal/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Client-side order summary arithmetic. These figures are display-only
// estimates; the server-confirmed total on a placed order is authoritative.
const (
	taxRate           = 0.18
	freeShippingAbove = 500.0
	shippingFlatFee   = 50.0
)

// Subtotal folds price*quantity over the cart lines.
func Subtotal(items []models.CartItem) float64 {
	return CartTotal(items)
}

// Tax is the 18% GST estimate on a subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * taxRate
}

// Shipping is free above the threshold, a flat fee otherwise.
func Shipping(subtotal float64) float64 {
	if subtotal > freeShippingAbove {
		return 0
	}
	return shippingFlatFee
}

// Total is subtotal plus tax plus shipping.
func Total(subtotal float64) float64 {
	return subtotal + Tax(subtotal) + Shipping(subtotal)
}

// OrderSummary bundles the estimate lines for the cart and checkout pages.
type OrderSummary struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// Summarize computes the full estimate for a set of cart lines.
func Summarize(items []models.CartItem) OrderSummary {
	subtotal := Subtotal(items)
	return OrderSummary{
		Subtotal: subtotal,
		Tax:      Tax(subtotal),
		Shipping: Shipping(subtotal),
		Total:    Total(subtotal),
	}
}

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount in Indian Rupees with locale-aware digit
// grouping.
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("₹%.2f", amount)
}
