package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shorturl-be/internal/entities"
)

// URLRepository defines the interface for short URL and access history database operations
type URLRepository interface {
	Create(ctx context.Context, originalURL, shortURL, qrCode, userID string) (*entities.ShortURL, error)
	FindByShortURL(ctx context.Context, shortURL string) (*entities.ShortURL, error)
	FindByID(ctx context.Context, id int64) (*entities.ShortURL, error)
	RecordAccess(ctx context.Context, id int64, accessedBy string) error
	GetHistory(ctx context.Context, id int64) ([]*entities.AccessRecord, error)
	ListSummaries(ctx context.Context, userID *string) ([]*entities.LinkSummary, error)
	Delete(ctx context.Context, id int64) error
}

type urlRepository struct {
	db *sqlx.DB
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sqlx.DB) URLRepository {
	return &urlRepository{db: db}
}

// Create inserts a new short URL. A short_url collision yields ErrDuplicate.
func (r *urlRepository) Create(ctx context.Context, originalURL, shortURL, qrCode, userID string) (*entities.ShortURL, error) {
	query := `
		INSERT INTO shorturl (original_url, short_url, qr_code, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING shorturl_id, original_url, short_url, qr_code, user_id, created_at
	`

	var url entities.ShortURL
	if err := r.db.GetContext(ctx, &url, query, originalURL, shortURL, qrCode, userID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("short url %q: %w", shortURL, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return &url, nil
}

// FindByShortURL finds a URL by its full short URL
func (r *urlRepository) FindByShortURL(ctx context.Context, shortURL string) (*entities.ShortURL, error) {
	query := `
		SELECT shorturl_id, original_url, short_url, qr_code, user_id, created_at
		FROM shorturl
		WHERE short_url = $1
		LIMIT 1
	`

	return r.findOne(ctx, query, shortURL)
}

// FindByID finds a URL by its numeric id
func (r *urlRepository) FindByID(ctx context.Context, id int64) (*entities.ShortURL, error) {
	query := `
		SELECT shorturl_id, original_url, short_url, qr_code, user_id, created_at
		FROM shorturl
		WHERE shorturl_id = $1
	`

	return r.findOne(ctx, query, id)
}

func (r *urlRepository) findOne(ctx context.Context, query string, arg any) (*entities.ShortURL, error) {
	var url entities.ShortURL
	err := r.db.GetContext(ctx, &url, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return &url, nil
}

// RecordAccess appends one access record for a URL
func (r *urlRepository) RecordAccess(ctx context.Context, id int64, accessedBy string) error {
	query := `INSERT INTO history (shorturl_id, accessed_by) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, id, accessedBy); err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}

	return nil
}

// GetHistory returns the access records of a URL, newest first
func (r *urlRepository) GetHistory(ctx context.Context, id int64) ([]*entities.AccessRecord, error) {
	query := `
		SELECT h.history_id, h.access_time, h.accessed_by, s.short_url, s.original_url
		FROM history h
		JOIN shorturl s ON h.shorturl_id = s.shorturl_id
		WHERE h.shorturl_id = $1
		ORDER BY h.access_time DESC, h.history_id DESC
	`

	history := []*entities.AccessRecord{}
	if err := r.db.SelectContext(ctx, &history, query, id); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return history, nil
}

// ListSummaries aggregates visits per URL. A nil userID lists every URL.
func (r *urlRepository) ListSummaries(ctx context.Context, userID *string) ([]*entities.LinkSummary, error) {
	query := `
		SELECT s.shorturl_id, s.original_url, s.short_url, s.created_at,
		       COUNT(h.history_id) AS total_visits,
		       MAX(h.access_time) AS last_accessed
		FROM shorturl s
		LEFT JOIN history h ON s.shorturl_id = h.shorturl_id
	`
	var args []any

	if userID != nil {
		query += ` WHERE s.user_id = $1`
		args = append(args, *userID)
	}

	query += ` GROUP BY s.shorturl_id ORDER BY s.created_at DESC`

	summaries := []*entities.LinkSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}

	return summaries, nil
}

// Delete removes a URL and its access history in one transaction.
// History goes first so no record is ever left pointing at a missing URL.
func (r *urlRepository) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM history WHERE shorturl_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM shorturl WHERE shorturl_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete URL: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		err = ErrNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
