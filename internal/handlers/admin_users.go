package handlers

import (
	"net/http"
	"strconv"

	"sareemahal/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminUsersPage lists every account. Name/email search and the role filter
// run client-side over this list; the detail view is read-only.
func (h *Handler) AdminUsersPage(c *gin.Context) {
	users, err := h.api.AdminListUsers(c.Request.Context(), h.requestContext(c))
	if err != nil {
		h.adminListError(c, err, "admin_users.html", "Manage Users", gin.H{"users": []models.User{}})
		return
	}

	c.HTML(http.StatusOK, "admin_users.html", h.pageData(c, "Manage Users", gin.H{
		"users": users,
	}))
}

// AdminUpdateUserStatus activates or deactivates a non-admin account. Admin
// accounts are never mutable through this console.
func (h *Handler) AdminUpdateUserStatus(c *gin.Context) {
	userID, target, ok := h.mutableUser(c)
	if !ok {
		return
	}

	active := c.Query("active") == "true"
	if err := h.api.AdminUpdateUserStatus(c.Request.Context(), h.requestContext(c), userID, active); err != nil {
		h.jsonError(c, err, "Could not update the user. Please try again.")
		return
	}

	message := "User deactivated"
	if active {
		message = "User activated"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "user": target.Email})
}

// AdminDeleteUser removes a non-admin account after the page's confirmation
// prompt. The page drops the row locally on success.
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	userID, _, ok := h.mutableUser(c)
	if !ok {
		return
	}

	if err := h.api.AdminDeleteUser(c.Request.Context(), h.requestContext(c), userID); err != nil {
		h.jsonError(c, err, "Could not delete the user. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}

// mutableUser resolves the target account and refuses mutations on admins.
// The check consults the live list rather than trusting a posted role field.
func (h *Handler) mutableUser(c *gin.Context) (int64, models.User, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
		return 0, models.User{}, false
	}

	users, err := h.api.AdminListUsers(c.Request.Context(), h.requestContext(c))
	if err != nil {
		h.jsonError(c, err, "Could not verify the user. Please try again.")
		return 0, models.User{}, false
	}
	for _, user := range users {
		if user.ID == userID {
			if user.IsAdmin() {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin accounts cannot be modified here"})
				return 0, models.User{}, false
			}
			return userID, user, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
	return 0, models.User{}, false
}
