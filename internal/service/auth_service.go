package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shorturl-be/internal/entities"
	"shorturl-be/internal/jwt"
	"shorturl-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (string, error)
	Login(ctx context.Context, username, password string) (string, *entities.Identity, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	bcryptCost int
	// dummyHash is compared against when the username is unknown, so that
	// path costs the same bcrypt work as a wrong password.
	dummyHash []byte
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, bcryptCost int) AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("shorturl-be/dummy"), bcryptCost)
	if err != nil {
		// Only reachable with a cost outside bcrypt's bounds, which config validation rejects.
		panic(fmt.Sprintf("service: invalid bcrypt cost %d: %v", bcryptCost, err))
	}

	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

// Register creates a new user account and returns its id
func (s *authService) Register(ctx context.Context, username, password, role string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || role == "" {
		return "", fmt.Errorf("%w: username, password and role are required", ErrValidation)
	}

	parsedRole, err := entities.ParseRole(role)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, username, string(hashedPassword), parsedRole)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}

// Login verifies the credentials and issues a session token
func (s *authService) Login(ctx context.Context, username, password string) (string, *entities.Identity, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	identity := &entities.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token, err := s.jwtService.GenerateToken(*identity)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, identity, nil
}
