package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UseCase struct {
	userRepo     repository.UserRepository
	jwtSecret    []byte
	accessExpiry time.Duration
}

func NewUseCase(userRepo repository.UserRepository, jwtSecret string, accessExpiry time.Duration) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		jwtSecret:    []byte(jwtSecret),
		accessExpiry: accessExpiry,
	}
}

// Response is the token payload returned by Register and Login.
type Response struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
}

// Register creates a user and issues an access token. The new user id
// doubles as the profile id for the onboarding flow.
func (uc *UseCase) Register(ctx context.Context, email, password string) (*Response, error) {
	if email == "" || len(password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueToken(user.ID)
}

func (uc *UseCase) Login(ctx context.Context, email, password string) (*Response, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.issueToken(user.ID)
}

// ParseToken verifies a bearer token and returns the user id it was
// issued for.
func (uc *UseCase) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrNotAuthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrNotAuthenticated
	}
	return sub, nil
}

func (uc *UseCase) issueToken(userID string) (*Response, error) {
	expiresAt := time.Now().Add(uc.accessExpiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Response{Token: signed, ExpiresAt: expiresAt, UserID: userID}, nil
}
