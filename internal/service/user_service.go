package service

import (
	"context"
	"errors"
	"strings"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

var (
	ErrMissingProfileFields  = errors.New("name, phone, and address are required")
	ErrMissingPasswordFields = errors.New("old password and new password are required")
	ErrWrongPassword         = errors.New("old password is incorrect")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, name, phone, address string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if name == "" || phone == "" || address == "" {
		return ErrMissingProfileFields
	}
	return s.userRepo.UpdateProfile(id, name, phone, address)
}

// ChangePassword is a read-verify-write sequence on the caller's own record.
// Concurrent changes for the same user can race; the store's row update is
// atomic and the last writer wins.
func (s *UserService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrMissingPasswordFields
	}
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	ok, err := security.VerifyPassword(user.PasswordHash, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}
	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePasswordHash(id, hash)
}
