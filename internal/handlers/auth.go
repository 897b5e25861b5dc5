package handlers

import (
	"log"
	"net/http"

	"sareemahal/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginPage renders the sign-in form.
func (h *Handler) LoginPage(c *gin.Context) {
	if h.currentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", h.pageData(c, "Log In", gin.H{
		"next":  c.Query("next"),
		"email": "",
	}))
}

// HandleLogin posts credentials to the backend and stores the bearer token on
// success. Failures render the form again with the structured message.
func (h *Handler) HandleLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	result := h.sessions.Login(c.Request.Context(), email, password)
	if !result.Success {
		c.HTML(http.StatusUnauthorized, "login.html", h.pageData(c, "Log In", gin.H{
			"error": result.Message,
			"email": email,
			"next":  c.PostForm("next"),
		}))
		return
	}

	h.setToken(c, result.Token)
	log.Printf("HandleLogin - User %s logged in with role %s", result.User.Email, result.User.Role)

	next := c.PostForm("next")
	if next == "" || next[0] != '/' {
		next = "/"
		if result.User.IsAdmin() {
			next = "/admin/products"
		}
	}
	c.Redirect(http.StatusSeeOther, next)
}

// RegisterPage renders the signup form.
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.pageData(c, "Create Account", gin.H{
		"name":  "",
		"email": "",
	}))
}

// HandleRegister posts the registration. The backend returns success only, so
// the user is sent to the login page to sign in explicitly.
func (h *Handler) HandleRegister(c *gin.Context) {
	var form models.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", h.pageData(c, "Create Account", gin.H{
			"error": "Please fill in all fields with a valid email and a password of at least 6 characters",
			"name":  form.Name,
			"email": form.Email,
		}))
		return
	}

	ok, message := h.sessions.Signup(c.Request.Context(), form)
	if !ok {
		c.HTML(http.StatusBadRequest, "register.html", h.pageData(c, "Create Account", gin.H{
			"error": message,
			"name":  form.Name,
			"email": form.Email,
		}))
		return
	}

	h.setFlash(c, "success", message)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the stored credential from both cookie locations. No backend
// call is needed.
func (h *Handler) Logout(c *gin.Context) {
	h.clearToken(c)
	h.setFlash(c, "success", "You have been logged out")
	c.Redirect(http.StatusSeeOther, "/")
}

// SessionStatus reports the resolved session to page scripts, with a checking
// flag so they can defer auth-gated UI while the initial check is in flight.
func (h *Handler) SessionStatus(c *gin.Context) {
	token := h.storedToken(c)
	if h.sessions.IsChecking(token) {
		c.JSON(http.StatusOK, gin.H{"loading": true})
		return
	}
	user := h.currentUser(c)
	c.JSON(http.StatusOK, gin.H{"loading": false, "loggedIn": user != nil, "user": user})
}
