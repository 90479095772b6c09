package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

var (
	ErrMissingRegisterFields = errors.New("all fields are required")
	ErrInvalidEmail          = errors.New("email is not a valid address")
	ErrMissingCredentials    = errors.New("email and password are required")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

type RegisterInput struct {
	Name     string
	Phone    string
	Address  string
	Email    string
	Password string
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	userRepo repository.UserRepository
	jwtMgr   *security.JWTManager
}

func NewAuthService(userRepo repository.UserRepository, jwtMgr *security.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtMgr: jwtMgr}
}

// Register stores a new credential record. No token is issued here; the
// client logs in afterwards.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	address := strings.TrimSpace(input.Address)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if name == "" || phone == "" || address == "" || email == "" || input.Password == "" {
		return nil, ErrMissingRegisterFields
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Phone:        phone,
		Address:      address,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a fresh bearer token. The token
// is self-contained; a later password change does not invalidate it before
// its expiry.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	ok, err := security.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	token, err := s.jwtMgr.Sign(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtMgr.TTL()),
	}, nil
}
