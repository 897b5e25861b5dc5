package backend

import (
	"context"
	"net/http"
)

// PaymentOrder is the payment intent created server-side before the hosted
// widget opens. Amount is in the gateway's smallest currency unit.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentRequest carries the hosted widget's completion callback fields
// plus the order details to finalize.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	ShippingAddress   string `json:"shippingAddress"`
	OrderNotes        string `json:"orderNotes"`
}

// VerifyPaymentResult identifies the finalized order.
type VerifyPaymentResult struct {
	OrderID int64 `json:"orderId"`
}

// CreatePaymentOrder creates the payment intent for the given amount.
func (c *Client) CreatePaymentOrder(ctx context.Context, rc RequestContext, amount float64) (PaymentOrder, error) {
	body := map[string]float64{"amount": amount}
	var order PaymentOrder
	err := c.do(ctx, rc, http.MethodPost, "/api/payment/create-order", nil, body, &order)
	return order, err
}

// VerifyPayment finalizes the order after the widget reports completion. A
// failed verification is reported to the user and never retried automatically.
func (c *Client) VerifyPayment(ctx context.Context, rc RequestContext, req VerifyPaymentRequest) (VerifyPaymentResult, error) {
	var result VerifyPaymentResult
	err := c.do(ctx, rc, http.MethodPost, "/api/payment/verify", nil, req, &result)
	return result, err
}
