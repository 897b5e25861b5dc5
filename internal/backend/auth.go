package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sareemahal/internal/models"
)

// SignInResult is the decoded /api/auth/signin response. The backend has
// shipped the token under both "token" and "accessToken"; both are accepted
// here and nowhere else.
type SignInResult struct {
	Token string
	User  models.User
}

type signInResponse struct {
	Token       string   `json:"token"`
	AccessToken string   `json:"accessToken"`
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
}

// ErrNoToken means the sign-in response carried neither accepted token field.
var ErrNoToken = errors.New("no authentication token in sign-in response")

// SignIn posts credentials and returns the bearer token plus the session user.
func (c *Client) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	body := map[string]string{"email": email, "password": password}

	var resp signInResponse
	if err := c.do(ctx, Anonymous, http.MethodPost, "/api/auth/signin", nil, body, &resp); err != nil {
		return SignInResult{}, err
	}

	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" {
		return SignInResult{}, ErrNoToken
	}

	return SignInResult{
		Token: token,
		User: models.User{
			ID:    resp.ID,
			Name:  resp.Name,
			Email: resp.Email,
			Role:  normalizeRole(resp.Roles),
		},
	}, nil
}

// SignUp registers a new account. The backend returns success only; the
// caller must follow up with an explicit sign-in.
func (c *Client) SignUp(ctx context.Context, form models.SignupForm) error {
	return c.do(ctx, Anonymous, http.MethodPost, "/api/auth/signup", nil, form, nil)
}

// Me returns the session behind the given token. A 401/403 from here means
// the credential is invalid.
func (c *Client) Me(ctx context.Context, rc RequestContext) (models.User, error) {
	var resp struct {
		ID    int64    `json:"id"`
		Name  string   `json:"name"`
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}
	if err := c.do(ctx, rc, http.MethodGet, "/api/auth/me", nil, nil, &resp); err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
		Role:  normalizeRole(resp.Roles),
	}, nil
}

// normalizeRole strips the backend's fixed ROLE_ prefix and defaults to USER.
func normalizeRole(roles []string) string {
	if len(roles) == 0 {
		return models.RoleUser
	}
	role := strings.TrimPrefix(roles[0], "ROLE_")
	if role == "" {
		return models.RoleUser
	}
	return role
}
