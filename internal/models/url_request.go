package models

// CreateURLRequest represents the request body for creating a short URL
type CreateURLRequest struct {
	OriginalURL string `json:"originalUrl" binding:"required,url"`
}
