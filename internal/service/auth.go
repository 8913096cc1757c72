package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/203225014/WB-calc/internal/crypto"
	"github.com/203225014/WB-calc/internal/model"
	"github.com/203225014/WB-calc/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("email is not a valid address")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnknownUser        = errors.New("user no longer exists")
)

// UserStore defines the persistence operations required by AuthService.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration, credential checks and token lifecycle.
type AuthService struct {
	store         UserStore
	jwtSecret     string
	tokenLifetime time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, lifetime time.Duration) *AuthService {
	return &AuthService{
		store:         store,
		jwtSecret:     secret,
		tokenLifetime: lifetime,
	}
}

// Register creates a new user account and returns its public projection.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if !strings.Contains(req.Email, "@") {
		return model.UserResponse{}, ErrEmailInvalid
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.PublicUser(user), nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password both come back as ErrInvalidCredentials so the caller
// cannot tell which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.TokenResponse, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.Email, s.jwtSecret, s.tokenLifetime)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ResolveToken verifies an access token and loads the account it refers to.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, crypto.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	email := claims.Subject
	if email == "" {
		return nil, ErrTokenInvalid
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	return user, nil
}
