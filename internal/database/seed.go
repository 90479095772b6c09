package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

// SeedDemoData inserts a handful of demo sellers and listings for local
// development. Emails are salted with a UUID so repeated runs never collide
// with real registrations.
func SeedDemoData(db *gorm.DB, count int) ([]domain.User, error) {
	if count <= 0 {
		count = 3
	}
	hash, err := security.HashPassword("demo-password")
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, count)
	for i := 0; i < count; i++ {
		user := domain.User{
			Name:         fmt.Sprintf("Demo Seller %d", i+1),
			Phone:        fmt.Sprintf("+62-812-000-%04d", i+1),
			Address:      fmt.Sprintf("Jl. Demo No. %d", i+1),
			Email:        fmt.Sprintf("demo-%s@stuma.local", uuid.NewString()[:8]),
			PasswordHash: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		item := domain.Item{
			Name:        fmt.Sprintf("Demo Item %d", i+1),
			Category:    "demo",
			Description: "Seeded listing for local development",
			Stock:       10,
			Price:       float64(10000 * (i + 1)),
			SellerID:    user.ID,
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
