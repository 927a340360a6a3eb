package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/jwt"
	"task-manager-service/internal/my_errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo UserRepository, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Register hashes the password, persists the user and issues a session
// token. Fails when the email is already taken.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, "", fmt.Errorf("%w", my_errors.ErrEmailAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password fail with the same error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, my_errors.ErrUserNotFound) {
			return nil, "", fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
		}
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// VerifyToken validates a bearer token and returns the identity it
// carries. Verification is stateless.
func (s *AuthService) VerifyToken(tokenString string) (domain.Identity, error) {
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	identity := domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, err := jwt.GenerateToken(identity, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
