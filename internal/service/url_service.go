package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/skip2/go-qrcode"

	"shorturl-be/internal/entities"
	"shorturl-be/internal/repository"
)

const (
	// ShortCodeLength is the length of generated short codes.
	ShortCodeLength = 6
	// QRCodeSize is the edge length, in pixels, of rendered QR codes.
	QRCodeSize = 256

	maxShortenAttempts = 5
)

// reservedCodes are first path segments already taken by other routes
var reservedCodes = map[string]bool{
	"auth":    true,
	"health":  true,
	"history": true,
	"qrcode":  true,
	"shorten": true,
	"user":    true,
}

// URLService defines the interface for URL business logic
type URLService interface {
	Shorten(ctx context.Context, originalURL string, owner entities.Identity) (*entities.ShortURL, error)
	Resolve(ctx context.Context, shortCode, accessedBy string) (string, error)
	QRCode(ctx context.Context, shortCode string) ([]byte, error)
	GetHistory(ctx context.Context, id int64, requester entities.Identity) ([]*entities.AccessRecord, error)
	GetUserLinks(ctx context.Context, requester entities.Identity) ([]*entities.LinkSummary, error)
	DeleteLink(ctx context.Context, id int64, requester entities.Identity) error
}

type urlService struct {
	repo    repository.URLRepository
	baseURL string
	logger  *slog.Logger
	newCode func() (string, error)
}

// NewURLService creates a new URL service. baseURL is joined with each short code to form the public short URL.
func NewURLService(repo repository.URLRepository, baseURL string, logger *slog.Logger) URLService {
	return &urlService{
		repo:    repo,
		baseURL: baseURL,
		logger:  logger,
		newCode: func() (string, error) {
			return gonanoid.New(ShortCodeLength)
		},
	}
}

func (s *urlService) shortURL(shortCode string) string {
	return s.baseURL + "/" + shortCode
}

// validateURL accepts absolute http and https URLs only
func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid URL: %w", ErrValidation, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: URL scheme must be http or https", ErrValidation)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: URL must include a host", ErrValidation)
	}
	return nil
}

// encodeQRCode renders content as a PNG QR code
func encodeQRCode(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, QRCodeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// Shorten creates a short URL owned by owner. Generated codes are not checked
// up front; a code that collides with an existing short URL is regenerated.
func (s *urlService) Shorten(ctx context.Context, originalURL string, owner entities.Identity) (*entities.ShortURL, error) {
	if err := validateURL(originalURL); err != nil {
		return nil, err
	}

	for i := 0; i < maxShortenAttempts; i++ {
		shortCode, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}
		if reservedCodes[strings.ToLower(shortCode)] {
			continue
		}

		shortURL := s.shortURL(shortCode)

		png, err := encodeQRCode(shortURL)
		if err != nil {
			return nil, err
		}
		qrCode := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

		link, err := s.repo.Create(ctx, originalURL, shortURL, qrCode, owner.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				s.logger.WarnContext(ctx, "short code collision, regenerating", slog.String("short_code", shortCode))
				continue
			}
			return nil, fmt.Errorf("failed to create URL: %w", err)
		}

		return link, nil
	}

	return nil, ErrMaxRetriesExceeded
}

// Resolve returns the original URL behind a short code and records the visit.
// A failure to record the visit is logged and does not block the redirect.
func (s *urlService) Resolve(ctx context.Context, shortCode, accessedBy string) (string, error) {
	link, err := s.repo.FindByShortURL(ctx, s.shortURL(shortCode))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find URL: %w", err)
	}

	if err := s.repo.RecordAccess(ctx, link.ID, accessedBy); err != nil {
		s.logger.ErrorContext(ctx, "failed to record access",
			slog.Int64("shorturl_id", link.ID),
			slog.String("accessed_by", accessedBy),
			slog.Any("err", err),
		)
	}

	return link.OriginalURL, nil
}

// QRCode renders the QR code PNG for an existing short code
func (s *urlService) QRCode(ctx context.Context, shortCode string) ([]byte, error) {
	link, err := s.repo.FindByShortURL(ctx, s.shortURL(shortCode))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return encodeQRCode(link.ShortURL)
}

// authorize loads a short URL and checks the requester may act on it
func (s *urlService) authorize(ctx context.Context, id int64, requester entities.Identity) (*entities.ShortURL, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	if !requester.CanAccess(link.UserID) {
		return nil, ErrForbidden
	}

	return link, nil
}

// GetHistory returns the visits to a short URL, newest first
func (s *urlService) GetHistory(ctx context.Context, id int64, requester entities.Identity) ([]*entities.AccessRecord, error) {
	if _, err := s.authorize(ctx, id, requester); err != nil {
		return nil, err
	}

	history, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return history, nil
}

// GetUserLinks lists the requester's short URLs with visit totals. Admins see every short URL.
func (s *urlService) GetUserLinks(ctx context.Context, requester entities.Identity) ([]*entities.LinkSummary, error) {
	var owner *string
	if !requester.Role.IsAdmin() {
		owner = &requester.UserID
	}

	summaries, err := s.repo.ListSummaries(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list URLs: %w", err)
	}

	return summaries, nil
}

// DeleteLink removes a short URL together with its visit history
func (s *urlService) DeleteLink(ctx context.Context, id int64, requester entities.Identity) error {
	if _, err := s.authorize(ctx, id, requester); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete URL: %w", err)
	}

	return nil
}
