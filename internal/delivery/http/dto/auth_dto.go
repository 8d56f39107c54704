package dto

import "github.com/shopspring/decimal"

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserOutput represents user data in API responses
type UserOutput struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Cash     decimal.Decimal `json:"cash"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string      `json:"token"`
	User  *UserOutput `json:"user"`
}
