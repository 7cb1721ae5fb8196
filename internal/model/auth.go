package model

// LoginRequest represents login parameters
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NavItem is one navigation menu entry the session role may see
type NavItem struct {
	Capability Capability `json:"capability"`
	Path       string     `json:"path"`
}
