package models

import "time"

// Order status values as delivered by the backend. The set is closed; the
// admin editor offers exactly these.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderStatuses lists every assignable status in display order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Payment status values.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

// Order mirrors a backend order.
type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	User            User        `json:"user"`
	OrderDate       time.Time   `json:"orderDate"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	TotalPrice      float64     `json:"totalPrice"`
	ShippingAddress string      `json:"shippingAddress"`
	OrderItems      []OrderItem `json:"orderItems"`
}

// OrderItem is one line of a placed order. Price is the unit price captured at
// order time, not the product's current price.
type OrderItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// LineTotal is the captured unit price times quantity, shown in the admin
// detail view. The footer grand total displays Order.TotalPrice as stored.
func (oi *OrderItem) LineTotal() float64 {
	return oi.Price * float64(oi.Quantity)
}

// IsValidOrderStatus reports whether s belongs to the closed status set.
func IsValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// StatusBadgeClass maps a status to the CSS badge class used by the order
// pages.
func StatusBadgeClass(status string) string {
	switch status {
	case OrderStatusPending:
		return "badge-pending"
	case OrderStatusConfirmed:
		return "badge-confirmed"
	case OrderStatusProcessing:
		return "badge-processing"
	case OrderStatusShipped:
		return "badge-shipped"
	case OrderStatusDelivered:
		return "badge-delivered"
	case OrderStatusCancelled:
		return "badge-cancelled"
	default:
		return "badge-default"
	}
}
