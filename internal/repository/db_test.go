package repository

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Item{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUserForTest(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:         name,
		Phone:        "+62-800-000-0000",
		Address:      "Jl. Test No. 1",
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}
