package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shorturl-be/internal/entities"
)

type MockAuthService struct {
	mock.Mock
}

func (s *MockAuthService) Register(ctx context.Context, username, password, role string) (string, error) {
	args := s.Called(ctx, username, password, role)
	return args.String(0), args.Error(1)
}

func (s *MockAuthService) Login(ctx context.Context, username, password string) (string, *entities.Identity, error) {
	args := s.Called(ctx, username, password)
	identity, _ := args.Get(1).(*entities.Identity)
	return args.String(0), identity, args.Error(2)
}

type MockURLService struct {
	mock.Mock
}

func (s *MockURLService) Shorten(ctx context.Context, originalURL string, owner entities.Identity) (*entities.ShortURL, error) {
	args := s.Called(ctx, originalURL, owner)
	link, _ := args.Get(0).(*entities.ShortURL)
	return link, args.Error(1)
}

func (s *MockURLService) Resolve(ctx context.Context, shortCode, accessedBy string) (string, error) {
	args := s.Called(ctx, shortCode, accessedBy)
	return args.String(0), args.Error(1)
}

func (s *MockURLService) QRCode(ctx context.Context, shortCode string) ([]byte, error) {
	args := s.Called(ctx, shortCode)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

func (s *MockURLService) GetHistory(ctx context.Context, id int64, requester entities.Identity) ([]*entities.AccessRecord, error) {
	args := s.Called(ctx, id, requester)
	history, _ := args.Get(0).([]*entities.AccessRecord)
	return history, args.Error(1)
}

func (s *MockURLService) GetUserLinks(ctx context.Context, requester entities.Identity) ([]*entities.LinkSummary, error) {
	args := s.Called(ctx, requester)
	summaries, _ := args.Get(0).([]*entities.LinkSummary)
	return summaries, args.Error(1)
}

func (s *MockURLService) DeleteLink(ctx context.Context, id int64, requester entities.Identity) error {
	args := s.Called(ctx, id, requester)
	return args.Error(0)
}
