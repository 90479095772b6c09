package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

func newServiceDBForTest(t *testing.T) *gorm.DB {
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

func newAuthServiceForTest(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	db := newServiceDBForTest(t)
	userRepo := repository.NewUserRepository(db)
	jwtMgr := security.NewJWTManager("stuma-api", "stuma-api-clients", "abcdefghijklmnopqrstuvwxyz123456", time.Hour)
	return NewAuthService(userRepo, jwtMgr), userRepo
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "Budi",
		Phone:    "+62-812-345-6789",
		Address:  "Jl. Kampus No. 1",
		Email:    "budi@example.com",
		Password: "s3cret-pass",
	}
}
