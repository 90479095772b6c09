package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
)

// ErrItemNotFound covers both a genuinely absent row and a row owned by
// someone else: the owner-scoped queries cannot tell the two apart, and the
// API must not either.
var ErrItemNotFound = errors.New("item not found")

// ItemListing is the read model for browse endpoints: public item fields
// joined with the seller's display name.
type ItemListing struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	SellerName  string  `json:"seller_name"`
}

type ItemRepository interface {
	Create(item *domain.Item) error
	FindByID(id uint) (*ItemListing, error)
	ListPaged(req PageRequest) (PageResult[ItemListing], error)
	UpdateOwned(id, sellerID uint, updates map[string]any) error
	DeleteOwned(id, sellerID uint) error
}

type GormItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &GormItemRepository{db: db} }

func (r *GormItemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) FindByID(id uint) (*ItemListing, error) {
	var row ItemListing
	err := r.listingQuery().Where("items.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *GormItemRepository) ListPaged(req PageRequest) (PageResult[ItemListing], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[ItemListing]{
		Page:     normalized.Page,
		PageSize: normalized.PageSize,
	}

	if err := r.db.Model(&domain.Item{}).Count(&result.Total).Error; err != nil {
		return PageResult[ItemListing]{}, err
	}
	offset := (normalized.Page - 1) * normalized.PageSize
	err := r.listingQuery().
		Order("items.id desc").
		Offset(offset).
		Limit(normalized.PageSize).
		Find(&result.Items).Error
	if err != nil {
		return PageResult[ItemListing]{}, err
	}
	result.TotalPages = calcTotalPages(result.Total, normalized.PageSize)
	return result, nil
}

// UpdateOwned addresses the row by primary key AND owner in one statement;
// zero rows affected is reported as not-found regardless of the reason.
func (r *GormItemRepository) UpdateOwned(id, sellerID uint, updates map[string]any) error {
	res := r.db.Model(&domain.Item{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) DeleteOwned(id, sellerID uint) error {
	res := r.db.Where("id = ? AND seller_id = ?", id, sellerID).Delete(&domain.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) listingQuery() *gorm.DB {
	return r.db.Model(&domain.Item{}).
		Select("items.id, items.name, items.category, items.description, items.stock, items.price, users.name AS seller_name").
		Joins("INNER JOIN users ON users.id = items.seller_id")
}
