package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloglist/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=../../mocks/mock_user_storage.go -package=mocks
type UserStorage interface {
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserGetByUsername(ctx context.Context, username string) (models.User, error)
}

const bearerPrefix = "Bearer "

// Authentication verifies credentials, issues tokens and resolves them back
// to an identity. Token checks are purely cryptographic: the user store is
// not consulted again once a token has been issued.
type Authentication struct {
	storage    UserStorage
	secretKey  []byte
	accessExp  time.Duration // zero disables the exp claim
	bcryptCost int
}

type Option func(*Authentication)

func WithBcryptCost(cost int) Option {
	return func(a *Authentication) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			a.bcryptCost = cost
		}
	}
}

func NewAuthentication(userStorage UserStorage, secretKey string, accessExp time.Duration, opts ...Option) (*Authentication, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < 32 {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least 32 bytes when decoded")
	}

	a := &Authentication{
		storage:    userStorage,
		secretKey:  key,
		accessExp:  accessExp,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Register stores a new user with a bcrypt hash of password.
// A taken username yields models.ErrConflict and nothing is written.
func (a *Authentication) Register(ctx context.Context, username, name, password string) (models.User, error) {
	if err := models.ValidateRegistration(username, password); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           models.NewID(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Posts:        []string{},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := a.storage.UserCreate(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Login checks the credentials and returns a signed token for the user.
// Unknown usernames and wrong passwords both yield models.ErrInvalidCredentials.
func (a *Authentication) Login(ctx context.Context, username, password string) (string, models.User, error) {
	user, err := a.storage.UserGetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return "", models.User{}, models.ErrInvalidCredentials
		}
		return "", models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", models.User{}, models.ErrInvalidCredentials
		}
		return "", models.User{}, fmt.Errorf("failed to compare passwords: %w", err)
	}

	token, err := a.jwtGenerate(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// Validate resolves a raw token into the identity it was issued for.
func (a *Authentication) Validate(tokenString string) (models.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secretKey, nil
		})
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}

	if !token.Valid {
		return models.Identity{}, models.ErrInvalidToken
	}

	if claims.UserID == "" {
		return models.Identity{}, fmt.Errorf("%w: user id claim missing", models.ErrInvalidToken)
	}

	return models.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// Authenticate resolves an Authorization header value into an identity.
func (a *Authentication) Authenticate(header string) (models.Identity, error) {
	token, err := ParseBearer(header)
	if err != nil {
		return models.Identity{}, err
	}
	return a.Validate(token)
}

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", models.ErrMissingToken
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", models.ErrMissingToken
	}
	return token, nil
}

type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
}

func (a *Authentication) jwtGenerate(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:   user.ID,
		Username: user.Username,
	}
	if a.accessExp != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(a.accessExp))
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return newToken.SignedString(a.secretKey)
}
