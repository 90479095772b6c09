package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
	"github.com/faizhadyan1212/StuMa-Api/internal/observability"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
)

var (
	ErrItemInvalidName        = errors.New("name is required and must be <= 120 characters")
	ErrItemInvalidCategory    = errors.New("category is required and must be <= 64 characters")
	ErrItemInvalidDescription = errors.New("description is required and must be <= 500 characters")
	ErrItemInvalidStock       = errors.New("stock must be a positive integer")
	ErrItemInvalidPrice       = errors.New("price must be a positive number")
	ErrItemNoUpdates          = errors.New("no updates provided")
)

type CreateItemInput struct {
	Name        string
	Category    string
	Description string
	Stock       int
	Price       float64
}

type UpdateItemInput struct {
	Name        *string
	Category    *string
	Description *string
	Stock       *int
	Price       *float64
}

type ItemServiceImpl struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemServiceImpl {
	return &ItemServiceImpl{repo: repo}
}

func (s *ItemServiceImpl) Create(ctx context.Context, sellerID uint, input CreateItemInput) (*domain.Item, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordItemOperation(ctx, "create", outcome, time.Since(start)) }()

	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	description := strings.TrimSpace(input.Description)
	if name == "" || len(name) > 120 {
		outcome = "bad_request"
		return nil, ErrItemInvalidName
	}
	if category == "" || len(category) > 64 {
		outcome = "bad_request"
		return nil, ErrItemInvalidCategory
	}
	if description == "" || len(description) > 500 {
		outcome = "bad_request"
		return nil, ErrItemInvalidDescription
	}
	if input.Stock <= 0 {
		outcome = "bad_request"
		return nil, ErrItemInvalidStock
	}
	if input.Price <= 0 {
		outcome = "bad_request"
		return nil, ErrItemInvalidPrice
	}

	item := &domain.Item{
		Name:        name,
		Category:    category,
		Description: description,
		Stock:       input.Stock,
		Price:       input.Price,
		SellerID:    sellerID,
	}
	if err := s.repo.Create(item); err != nil {
		outcome = "error"
		return nil, err
	}
	return item, nil
}

func (s *ItemServiceImpl) ListPaged(ctx context.Context, req repository.PageRequest) (repository.PageResult[repository.ItemListing], error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordItemOperation(ctx, "list", outcome, time.Since(start)) }()

	res, err := s.repo.ListPaged(req)
	if err != nil {
		outcome = "error"
		return repository.PageResult[repository.ItemListing]{}, err
	}
	return res, nil
}

func (s *ItemServiceImpl) GetByID(ctx context.Context, id uint) (*repository.ItemListing, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordItemOperation(ctx, "get", outcome, time.Since(start)) }()

	item, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			outcome = "not_found"
		} else {
			outcome = "error"
		}
		return nil, err
	}
	return item, nil
}

// Update mutates only rows owned by sellerID; a miss on either the id or the
// owner comes back as repository.ErrItemNotFound.
func (s *ItemServiceImpl) Update(ctx context.Context, id, sellerID uint, input UpdateItemInput) (*repository.ItemListing, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordItemOperation(ctx, "update", outcome, time.Since(start)) }()

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > 120 {
			outcome = "bad_request"
			return nil, ErrItemInvalidName
		}
		updates["name"] = name
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" || len(category) > 64 {
			outcome = "bad_request"
			return nil, ErrItemInvalidCategory
		}
		updates["category"] = category
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" || len(description) > 500 {
			outcome = "bad_request"
			return nil, ErrItemInvalidDescription
		}
		updates["description"] = description
	}
	if input.Stock != nil {
		if *input.Stock <= 0 {
			outcome = "bad_request"
			return nil, ErrItemInvalidStock
		}
		updates["stock"] = *input.Stock
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			outcome = "bad_request"
			return nil, ErrItemInvalidPrice
		}
		updates["price"] = *input.Price
	}
	if len(updates) == 0 {
		outcome = "bad_request"
		return nil, ErrItemNoUpdates
	}

	if err := s.repo.UpdateOwned(id, sellerID, updates); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			outcome = "not_found"
		} else {
			outcome = "error"
		}
		return nil, err
	}
	item, err := s.repo.FindByID(id)
	if err != nil {
		outcome = "error"
		return nil, err
	}
	return item, nil
}

func (s *ItemServiceImpl) DeleteByID(ctx context.Context, id, sellerID uint) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordItemOperation(ctx, "delete", outcome, time.Since(start)) }()

	if err := s.repo.DeleteOwned(id, sellerID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			outcome = "not_found"
		} else {
			outcome = "error"
		}
		return err
	}
	return nil
}
