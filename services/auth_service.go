package services

import (
	"context"
	"errors"
	"strings"

	"stayhub-backend/models"
	"stayhub-backend/repositories"
	"stayhub-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService registers users and issues JWT tokens. The booking engine
// itself trusts the actor identity the middleware extracts from the token.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     models.ActorRole
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if strings.TrimSpace(in.FullName) == "" {
		return nil, models.NewValidationError("full name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, models.NewValidationError("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, models.NewValidationError("password must be at least 8 characters")
	}
	role := in.Role
	if role == "" {
		role = models.RoleTraveler
	}
	if role != models.RoleTraveler && role != models.RoleOwner {
		return nil, models.NewValidationError("role must be traveler or owner")
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, models.NewValidationError("email is already registered")
	} else if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed token plus the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
