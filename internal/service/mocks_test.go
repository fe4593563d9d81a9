package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shorturl-be/internal/entities"
)

type MockUserRepository struct {
	mock.Mock
}

func (r *MockUserRepository) Create(ctx context.Context, username, passwordHash string, role entities.Role) (*entities.User, error) {
	args := r.Called(ctx, username, passwordHash, role)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (r *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := r.Called(ctx, username)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

type MockURLRepository struct {
	mock.Mock
}

func (r *MockURLRepository) Create(ctx context.Context, originalURL, shortURL, qrCode, userID string) (*entities.ShortURL, error) {
	args := r.Called(ctx, originalURL, shortURL, qrCode, userID)
	url, _ := args.Get(0).(*entities.ShortURL)
	return url, args.Error(1)
}

func (r *MockURLRepository) FindByShortURL(ctx context.Context, shortURL string) (*entities.ShortURL, error) {
	args := r.Called(ctx, shortURL)
	url, _ := args.Get(0).(*entities.ShortURL)
	return url, args.Error(1)
}

func (r *MockURLRepository) FindByID(ctx context.Context, id int64) (*entities.ShortURL, error) {
	args := r.Called(ctx, id)
	url, _ := args.Get(0).(*entities.ShortURL)
	return url, args.Error(1)
}

func (r *MockURLRepository) RecordAccess(ctx context.Context, id int64, accessedBy string) error {
	args := r.Called(ctx, id, accessedBy)
	return args.Error(0)
}

func (r *MockURLRepository) GetHistory(ctx context.Context, id int64) ([]*entities.AccessRecord, error) {
	args := r.Called(ctx, id)
	history, _ := args.Get(0).([]*entities.AccessRecord)
	return history, args.Error(1)
}

func (r *MockURLRepository) ListSummaries(ctx context.Context, userID *string) ([]*entities.LinkSummary, error) {
	args := r.Called(ctx, userID)
	summaries, _ := args.Get(0).([]*entities.LinkSummary)
	return summaries, args.Error(1)
}

func (r *MockURLRepository) Delete(ctx context.Context, id int64) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}
