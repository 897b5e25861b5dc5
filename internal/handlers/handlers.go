package handlers

import (
	"log"
	"net/http"
	"net/url"

	"sareemahal/internal/backend"
	"sareemahal/internal/config"
	"sareemahal/internal/models"
	"sareemahal/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Cookie names. The token lives in TokenCookie; LegacyTokenCookie is the old
// location some browsers still carry, cleared proactively whenever the
// credential is cleared.
const (
	TokenCookie       = "saree_token"
	LegacyTokenCookie = "token"
	SessionCookie     = "browser_session"
	flashCookie       = "flash"

	tokenCookieMaxAge   = 3600 * 24 * 7
	sessionCookieMaxAge = 3600 * 24 * 30
)

// Handler serves every page and JSON endpoint of the storefront and the admin
// console.
type Handler struct {
	cfg       *config.Config
	api       *backend.Client
	sessions  *services.SessionService
	carts     *services.CartService
	checkouts *services.CheckoutService
	viewstate *services.ViewStateService
	vocab     *services.VocabularyService
}

// NewHandler wires the handler to its services.
func NewHandler(cfg *config.Config, api *backend.Client) *Handler {
	return &Handler{
		cfg:       cfg,
		api:       api,
		sessions:  services.NewSessionService(api),
		carts:     services.NewCartService(api),
		checkouts: services.NewCheckoutService(),
		viewstate: services.NewViewStateService(),
		vocab:     services.NewVocabularyService(api),
	}
}

// --- Cookies ---

// storedToken reads the credential from the primary cookie, falling back to
// the legacy location.
func (h *Handler) storedToken(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}
	token, _ := c.Cookie(LegacyTokenCookie)
	return token
}

func (h *Handler) setToken(c *gin.Context, token string) {
	c.SetCookie(TokenCookie, token, tokenCookieMaxAge, "/", "", false, true)
}

// clearToken expires both storage locations.
func (h *Handler) clearToken(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(LegacyTokenCookie, "", -1, "/", "", false, true)
}

// browserSession returns the anonymous browser session id, creating it when
// absent. It keys wizard drafts and carousel state, not identity.
func (h *Handler) browserSession(c *gin.Context) string {
	sessionID, _ := c.Cookie(SessionCookie)
	if sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(SessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)
	}
	return sessionID
}

func (h *Handler) requestContext(c *gin.Context) backend.RequestContext {
	return backend.RequestContext{Token: h.storedToken(c)}
}

// --- Session resolution ---

const userContextKey = "session_user"

// currentUser resolves the session once per request. Shape-invalid, expired,
// or rejected tokens are cleared here; transient verification failures leave
// the cookie alone and yield no session for this page view.
func (h *Handler) currentUser(c *gin.Context) *models.User {
	if cached, ok := c.Get(userContextKey); ok {
		user, _ := cached.(*models.User)
		return user
	}

	token := h.storedToken(c)
	if token == "" {
		c.Set(userContextKey, (*models.User)(nil))
		return nil
	}

	result := h.sessions.CheckAuthStatus(c.Request.Context(), token)
	if result.ClearToken {
		h.clearToken(c)
	}
	c.Set(userContextKey, result.User)
	return result.User
}

// --- Middleware ---

// AuthUserMiddleware gates user-only routes. Unauthenticated requests go to
// the login page with an explanatory message.
func (h *Handler) AuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.currentUser(c) == nil {
			h.setFlash(c, "error", "Please log in to continue")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthAdminMiddleware gates the admin console: no session redirects to login,
// a non-admin session redirects home. The backend enforces the authoritative
// check on every admin call regardless.
func (h *Handler) AuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := h.currentUser(c)
		if user == nil {
			h.setFlash(c, "error", "Please log in to continue")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			h.setFlash(c, "error", "You are not authorized to view that page")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// --- Flash messages ---

// setFlash stores a one-shot notification in a short-lived cookie, the
// server-rendered analog of a toast.
func (h *Handler) setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 60, "/", "", false, false)
}

// takeFlash reads and clears the pending notification.
func (h *Handler) takeFlash(c *gin.Context) (kind, message string) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return "", ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, false)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ""
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '|' {
			return decoded[:i], decoded[i+1:]
		}
	}
	return "info", decoded
}

// pageData assembles the fields every template expects.
func (h *Handler) pageData(c *gin.Context, title string, extra gin.H) gin.H {
	user := h.currentUser(c)
	kind, message := h.takeFlash(c)

	data := gin.H{
		"title":      title,
		"isLoggedIn": user != nil,
		"user":       user,
		"flashKind":  kind,
		"flashMsg":   message,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// --- JSON error mapping ---

// jsonError converts a backend failure into the JSON shape the page scripts
// expect, applying the error taxonomy: 401/403 clears the credential, 403 for
// a valid session is authorization, anything else is generic.
func (h *Handler) jsonError(c *gin.Context, err error, fallback string) {
	switch {
	case backend.IsUnauthorized(err):
		h.clearToken(c)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Session expired. Please log in again.", "redirect": "/login"})
	case backend.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You are not authorized to do that", "redirect": "/"})
	case backend.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": backend.UserMessage(err, "Not found")})
	default:
		log.Printf("Handler.jsonError - %s: %v", fallback, err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": fallback})
	}
}
