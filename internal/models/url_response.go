package models

import (
	"time"

	"shorturl-be/internal/entities"
)

// CreateURLResponse represents the response after creating a short URL
type CreateURLResponse struct {
	ID          int64     `json:"shorturl_id"`
	OriginalURL string    `json:"originalUrl"`
	ShortURL    string    `json:"shortUrl"`
	QRCode      string    `json:"qrCode"` // data:image/png;base64,...
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryResponse lists the visits to one short URL, newest first
type HistoryResponse struct {
	ShortURLID  int64                    `json:"shorturl_id"`
	TotalVisits int                      `json:"total_visits"`
	History     []*entities.AccessRecord `json:"history"`
}

// UserHistoryResponse lists the caller's short URLs (or every short URL, for admins)
type UserHistoryResponse struct {
	UserID    string                  `json:"user_id"`
	TotalURLs int                     `json:"total_urls"`
	URLs      []*entities.LinkSummary `json:"urls"`
}

// DeleteURLResponse confirms a short URL was removed
type DeleteURLResponse struct {
	Message    string `json:"message"`
	ShortURLID int64  `json:"shorturl_id"`
}
