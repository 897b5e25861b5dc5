package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"sareemahal/internal/backend"
	"sareemahal/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// SessionService owns the client side of "who is logged in": the superficial
// token shape guard, the who-am-I verification, and the login/signup calls.
// The actual credential verification always happens server-side.
type SessionService struct {
	api *backend.Client

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewSessionService creates a SessionService backed by the given API client.
func NewSessionService(api *backend.Client) *SessionService {
	return &SessionService{
		api:      api,
		inFlight: make(map[string]bool),
	}
}

// TokenShapeValid runs the superficial checks a stored credential must pass
// before it is worth a network round trip: non-empty, not the literal strings
// "null"/"undefined", and exactly two '.' separators.
func TokenShapeValid(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" || token == "null" || token == "undefined" {
		return false
	}
	return strings.Count(token, ".") == 2
}

// tokenExpired parses the token without verifying its signature, purely to
// read the expiry claim. A token the client can already see is expired gets
// cleared without a round trip. Unreadable claims are left for the server to
// judge.
func tokenExpired(token string) bool {
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}

// CheckResult is the outcome of a session status check.
type CheckResult struct {
	// User is the verified session, nil when not logged in.
	User *models.User
	// ClearToken tells the caller to discard the stored credential.
	ClearToken bool
	// Skipped means another check for the same token was already in flight
	// and this call was a no-op.
	Skipped bool
}

// CheckAuthStatus validates the stored token. Shape-invalid or expired tokens
// are cleared without a network call. A 401/403 from the who-am-I endpoint
// clears the token; any other failure keeps it but leaves the session empty
// for this page load. Only one check per token runs at a time.
func (s *SessionService) CheckAuthStatus(ctx context.Context, token string) CheckResult {
	if !TokenShapeValid(token) {
		return CheckResult{ClearToken: token != ""}
	}
	if tokenExpired(token) {
		log.Printf("SessionService.CheckAuthStatus - Token expired client-side, clearing")
		return CheckResult{ClearToken: true}
	}

	s.mu.Lock()
	if s.inFlight[token] {
		s.mu.Unlock()
		return CheckResult{Skipped: true}
	}
	s.inFlight[token] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, token)
		s.mu.Unlock()
	}()

	user, err := s.api.Me(ctx, backend.RequestContext{Token: token})
	if err != nil {
		if backend.IsAuthError(err) {
			log.Printf("SessionService.CheckAuthStatus - Token rejected, clearing")
			return CheckResult{ClearToken: true}
		}
		// Transient failure: keep the credential, it may still be valid.
		log.Printf("SessionService.CheckAuthStatus - Verification unavailable: %v", err)
		return CheckResult{}
	}
	return CheckResult{User: &user}
}

// IsChecking reports whether a status check for this token is in flight, so
// views can defer rendering auth-gated UI.
func (s *SessionService) IsChecking(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[token]
}

// LoginResult is the structured outcome of a login attempt. Backend failures
// never escape as errors.
type LoginResult struct {
	Success bool
	Message string
	Token   string
	User    models.User
}

// Login posts credentials and returns the token plus decoded session on
// success.
func (s *SessionService) Login(ctx context.Context, email, password string) LoginResult {
	result, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("SessionService.Login - Sign-in failed for %s: %v", email, err)
		return LoginResult{Message: backend.UserMessage(err, "Login failed. Please try again.")}
	}
	return LoginResult{Success: true, Token: result.Token, User: result.User}
}

// Signup registers an account. Success still requires an explicit follow-up
// login; the backend returns no token here.
func (s *SessionService) Signup(ctx context.Context, form models.SignupForm) (bool, string) {
	if err := s.api.SignUp(ctx, form); err != nil {
		log.Printf("SessionService.Signup - Registration failed for %s: %v", form.Email, err)
		return false, backend.UserMessage(err, "Signup failed. Please try again.")
	}
	return true, "Account created. Please log in."
}
