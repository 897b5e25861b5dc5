package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Payment method choices offered on the checkout wizard.
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCOD      = "cod"
)

// Checkout wizard steps, linearly navigable.
const (
	CheckoutStepAddress = 1
	CheckoutStepPayment = 2
	CheckoutStepReview  = 3
)

// ShippingAddress is the checkout address draft, validated client-side before
// the wizard advances past step 1.
type ShippingAddress struct {
	FullName     string `form:"fullName" json:"fullName" validate:"required"`
	Phone        string `form:"phone" json:"phone" validate:"required,len=10,numeric"`
	AddressLine1 string `form:"addressLine1" json:"addressLine1" validate:"required"`
	AddressLine2 string `form:"addressLine2" json:"addressLine2"`
	City         string `form:"city" json:"city" validate:"required"`
	State        string `form:"state" json:"state" validate:"required"`
	Pincode      string `form:"pincode" json:"pincode" validate:"required,len=6,numeric"`
	Landmark     string `form:"landmark" json:"landmark"`
}

var addressValidator = validator.New()

// Field order and messages for reporting: the first failing field wins.
var addressFieldOrder = []string{"FullName", "Phone", "AddressLine1", "City", "State", "Pincode"}

var addressFieldMessages = map[string]string{
	"FullName":     "Please enter your full name",
	"Phone":        "Please enter a valid 10-digit phone number",
	"AddressLine1": "Please enter your address",
	"City":         "Please enter your city",
	"State":        "Please enter your state",
	"Pincode":      "Please enter a valid 6-digit pincode",
}

// Validate checks the required-field and format rules. It returns an error
// carrying the message for the first failing field, in form order.
func (a *ShippingAddress) Validate() error {
	err := addressValidator.Struct(a)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.New("Invalid address details")
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = true
	}
	for _, field := range addressFieldOrder {
		if failed[field] {
			return errors.New(addressFieldMessages[field])
		}
	}
	return errors.New("Invalid address details")
}

// CheckoutDraft is the per-browser-session wizard state: the address entered
// at step 1, the payment choice at step 2, and optional order notes.
type CheckoutDraft struct {
	Step          int
	Address       ShippingAddress
	PaymentMethod string
	OrderNotes    string
}

// NewCheckoutDraft starts a draft at the address step with online payment
// preselected, matching the storefront default.
func NewCheckoutDraft() *CheckoutDraft {
	return &CheckoutDraft{
		Step:          CheckoutStepAddress,
		PaymentMethod: PaymentMethodRazorpay,
	}
}
