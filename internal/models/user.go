package models

// User roles after the backend's ROLE_ prefix is stripped at the API boundary.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the client's copy of a backend account. Role gates admin menus and
// routes here, but the authoritative check happens server-side.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// IsAdmin reports whether the user may see the admin console.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SignupForm carries the registration fields posted to the backend.
type SignupForm struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}
