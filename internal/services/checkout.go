package services

import (
	"fmt"
	"sync"

	"sareemahal/internal/models"
)

// CheckoutService holds the per-browser-session wizard drafts: address at
// step 1, payment choice at step 2, review at step 3. Drafts are transient
// and dropped when the order is placed or the session's cookie expires.
type CheckoutService struct {
	mu     sync.Mutex
	drafts map[string]*models.CheckoutDraft
}

// NewCheckoutService creates an empty draft store.
func NewCheckoutService() *CheckoutService {
	return &CheckoutService{drafts: make(map[string]*models.CheckoutDraft)}
}

// Draft returns a copy of the session's draft, creating one at the address
// step when none exists.
func (s *CheckoutService) Draft(sessionID string) models.CheckoutDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.draftLocked(sessionID)
}

func (s *CheckoutService) draftLocked(sessionID string) *models.CheckoutDraft {
	draft, ok := s.drafts[sessionID]
	if !ok {
		draft = models.NewCheckoutDraft()
		s.drafts[sessionID] = draft
	}
	return draft
}

// SaveAddress validates step 1 and advances to the payment step. Validation
// failure keeps the wizard on the address step and reports the first failing
// field.
func (s *CheckoutService) SaveAddress(sessionID string, address models.ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.draftLocked(sessionID)
	draft.Address = address
	if draft.Step < models.CheckoutStepPayment {
		draft.Step = models.CheckoutStepPayment
	}
	return nil
}

// SavePayment records step 2 and advances to review.
func (s *CheckoutService) SavePayment(sessionID, method, notes string) error {
	if method != models.PaymentMethodRazorpay && method != models.PaymentMethodCOD {
		return fmt.Errorf("unknown payment method %q", method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.draftLocked(sessionID)
	if draft.Step < models.CheckoutStepPayment {
		return fmt.Errorf("complete the address step first")
	}
	draft.PaymentMethod = method
	draft.OrderNotes = notes
	if draft.Step < models.CheckoutStepReview {
		draft.Step = models.CheckoutStepReview
	}
	return nil
}

// CurrentStep returns the step the wizard should render for the given
// requested step, clamped to what the draft has completed.
func (s *CheckoutService) CurrentStep(sessionID string, requested int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.draftLocked(sessionID)
	if requested >= models.CheckoutStepAddress && requested <= draft.Step {
		return requested
	}
	return draft.Step
}

// Clear drops the session's draft, called after the order is placed.
func (s *CheckoutService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
