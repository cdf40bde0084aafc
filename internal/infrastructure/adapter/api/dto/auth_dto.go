package dto

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Balance string `json:"balance"`
}

// AuthResponse represents the API response for register and login
type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
