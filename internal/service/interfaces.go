package service

import (
	"context"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=gomock/mock_services.go -package=servicegomock

type AuthServiceInterface interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type UserServiceInterface interface {
	GetProfile(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uint, name, phone, address string) error
	ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error
}

type ItemService interface {
	Create(ctx context.Context, sellerID uint, input CreateItemInput) (*domain.Item, error)
	ListPaged(ctx context.Context, req repository.PageRequest) (repository.PageResult[repository.ItemListing], error)
	GetByID(ctx context.Context, id uint) (*repository.ItemListing, error)
	Update(ctx context.Context, id, sellerID uint, input UpdateItemInput) (*repository.ItemListing, error)
	DeleteByID(ctx context.Context, id, sellerID uint) error
}
