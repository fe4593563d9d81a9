package models

import "shorturl-be/internal/entities"

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginResponse represents the response after successful authentication.
// The token is also set as the session cookie.
type LoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    entities.Identity `json:"user"`
}
