package entities

import "time"

// ShortURL represents a shortened URL entity in the database
type ShortURL struct {
	ID          int64     `db:"shorturl_id" json:"shorturl_id"`
	OriginalURL string    `db:"original_url" json:"original_url"`
	ShortURL    string    `db:"short_url" json:"short_url"`
	QRCode      string    `db:"qr_code" json:"qr_code"` // PNG data URL of ShortURL
	UserID      string    `db:"user_id" json:"user_id"` // UUID of the owner
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AccessRecord is one redirect served for a short URL, joined with the link it belongs to.
type AccessRecord struct {
	ID          int64     `db:"history_id" json:"history_id"`
	AccessTime  time.Time `db:"access_time" json:"access_time"`
	AccessedBy  string    `db:"accessed_by" json:"accessed_by"`
	ShortURL    string    `db:"short_url" json:"short_url"`
	OriginalURL string    `db:"original_url" json:"original_url"`
}

// LinkSummary aggregates the access history of one short URL.
type LinkSummary struct {
	ID           int64      `db:"shorturl_id" json:"shorturl_id"`
	OriginalURL  string     `db:"original_url" json:"original_url"`
	ShortURL     string     `db:"short_url" json:"short_url"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	TotalVisits  int64      `db:"total_visits" json:"total_visits"`
	LastAccessed *time.Time `db:"last_accessed" json:"last_accessed"` // nil when never visited
}
