package services

import (
	"testing"

	"sareemahal/internal/models"
)

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName:     "Priya Sharma",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}

func TestCheckoutDraftDefaults(t *testing.T) {
	s := NewCheckoutService()
	draft := s.Draft("session")
	if draft.Step != models.CheckoutStepAddress {
		t.Errorf("fresh draft starts at step %d, want %d", draft.Step, models.CheckoutStepAddress)
	}
	if draft.PaymentMethod != models.PaymentMethodRazorpay {
		t.Errorf("fresh draft payment = %q, want razorpay preselected", draft.PaymentMethod)
	}
}

func TestSaveAddressAdvances(t *testing.T) {
	s := NewCheckoutService()
	if err := s.SaveAddress("session", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v, want nil", err)
	}
	draft := s.Draft("session")
	if draft.Step != models.CheckoutStepPayment {
		t.Errorf("step after address = %d, want %d", draft.Step, models.CheckoutStepPayment)
	}
	if draft.Address.FullName != "Priya Sharma" {
		t.Errorf("address not stored: %+v", draft.Address)
	}
}

func TestSaveAddressRejectsInvalid(t *testing.T) {
	s := NewCheckoutService()
	bad := testAddress()
	bad.Phone = "12345"
	if err := s.SaveAddress("session", bad); err == nil {
		t.Fatal("SaveAddress accepted an invalid phone")
	}
	if draft := s.Draft("session"); draft.Step != models.CheckoutStepAddress {
		t.Errorf("step after failed save = %d, want to stay on address", draft.Step)
	}
}

func TestSavePaymentRequiresAddressFirst(t *testing.T) {
	s := NewCheckoutService()
	if err := s.SavePayment("session", models.PaymentMethodCOD, ""); err == nil {
		t.Fatal("SavePayment succeeded before the address step")
	}

	if err := s.SaveAddress("session", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v", err)
	}
	if err := s.SavePayment("session", models.PaymentMethodCOD, "ring the bell"); err != nil {
		t.Fatalf("SavePayment = %v, want nil", err)
	}

	draft := s.Draft("session")
	if draft.Step != models.CheckoutStepReview {
		t.Errorf("step after payment = %d, want %d", draft.Step, models.CheckoutStepReview)
	}
	if draft.PaymentMethod != models.PaymentMethodCOD || draft.OrderNotes != "ring the bell" {
		t.Errorf("payment draft = %+v", draft)
	}
}

func TestSavePaymentRejectsUnknownMethod(t *testing.T) {
	s := NewCheckoutService()
	if err := s.SaveAddress("session", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v", err)
	}
	if err := s.SavePayment("session", "cheque", ""); err == nil {
		t.Fatal("SavePayment accepted an unknown method")
	}
}

func TestCurrentStepClampsForward(t *testing.T) {
	s := NewCheckoutService()
	if got := s.CurrentStep("session", models.CheckoutStepReview); got != models.CheckoutStepAddress {
		t.Errorf("CurrentStep on fresh draft = %d, want clamped to address", got)
	}

	if err := s.SaveAddress("session", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v", err)
	}
	if got := s.CurrentStep("session", models.CheckoutStepAddress); got != models.CheckoutStepAddress {
		t.Errorf("backward navigation = %d, want address step", got)
	}
	if got := s.CurrentStep("session", models.CheckoutStepReview); got != models.CheckoutStepPayment {
		t.Errorf("skipping ahead = %d, want clamped to payment", got)
	}
	if got := s.CurrentStep("session", 0); got != models.CheckoutStepPayment {
		t.Errorf("no requested step = %d, want the draft's step", got)
	}
}

func TestBackwardNavigationKeepsData(t *testing.T) {
	s := NewCheckoutService()
	if err := s.SaveAddress("session", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v", err)
	}
	if got := s.CurrentStep("session", models.CheckoutStepAddress); got != models.CheckoutStepAddress {
		t.Errorf("CurrentStep back = %d, want address", got)
	}
	draft := s.Draft("session")
	if draft.Address.City != "Bengaluru" {
		t.Errorf("address lost on backward navigation: %+v", draft.Address)
	}
	// The stored draft itself keeps its completed step.
	if draft.Step != models.CheckoutStepPayment {
		t.Errorf("stored step = %d, want payment", draft.Step)
	}
}

func TestClearDropsDraft(t *testing.T) {
	s := NewCheckoutService()
	if err := s.SaveAddress("session", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v", err)
	}
	s.Clear("session")
	if draft := s.Draft("session"); draft.Step != models.CheckoutStepAddress {
		t.Errorf("draft after Clear = %+v, want a fresh one", draft)
	}
}

func TestDraftsAreSessionScoped(t *testing.T) {
	s := NewCheckoutService()
	if err := s.SaveAddress("session-a", testAddress()); err != nil {
		t.Fatalf("SaveAddress = %v", err)
	}
	if draft := s.Draft("session-b"); draft.Step != models.CheckoutStepAddress {
		t.Errorf("other session's draft = %+v, want untouched", draft)
	}
}
