package models

import "testing"

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		if !IsValidOrderStatus(status) {
			t.Errorf("IsValidOrderStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "pending", "RETURNED"} {
		if IsValidOrderStatus(status) {
			t.Errorf("IsValidOrderStatus(%q) = true, want false", status)
		}
	}
}

func TestStatusBadgeClass(t *testing.T) {
	if got := StatusBadgeClass(OrderStatusShipped); got != "badge-shipped" {
		t.Errorf("StatusBadgeClass(SHIPPED) = %q, want badge-shipped", got)
	}
	if got := StatusBadgeClass("MYSTERY"); got != "badge-default" {
		t.Errorf("StatusBadgeClass(MYSTERY) = %q, want badge-default", got)
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Price: 1200, Quantity: 3}
	if got := item.LineTotal(); got != 3600 {
		t.Errorf("LineTotal() = %v, want 3600", got)
	}
}
