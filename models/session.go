package models

// Role controls which parts of the console a user can reach
type Role int

const (
	RoleAdmin Role = 1
	RoleStaff Role = 2
)

// Session is the single explicit identity value passed to anything that
// needs role or user information. It is issued at login and resolved from
// the request token at one boundary; nothing else parses identity state.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the session may reach admin-only routes
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// LoginRequest represents the request body for POST /api/auth/login
// Example: {"username": "admin", "password": "secret"}
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token plus the session it encodes
type LoginResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}
