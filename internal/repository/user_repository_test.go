package repository

import (
	"errors"
	"testing"

	"github.com/faizhadyan1212/StuMa-Api/internal/domain"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	u := &domain.User{
		Name:         "Alice",
		Phone:        "+62-811-111-1111",
		Address:      "Jl. Satu",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}

	byID, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Fatalf("unexpected email %q", byID.Email)
	}

	byEmail, err := repo.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Fatalf("id mismatch: got %d want %d", byEmail.ID, u.ID)
	}
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	first := &domain.User{Name: "A", Phone: "1", Address: "x", Email: "dup@example.com", PasswordHash: "h"}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := &domain.User{Name: "B", Phone: "2", Address: "y", Email: "dup@example.com", PasswordHash: "h"}
	if err := repo.Create(second); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepositoryNotFound(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	if _, err := repo.FindByID(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by id, got %v", err)
	}
	if _, err := repo.FindByEmail("ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by email, got %v", err)
	}
	if err := repo.UpdateProfile(999, "n", "p", "a"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on profile update, got %v", err)
	}
	if err := repo.UpdatePasswordHash(999, "h"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on password update, got %v", err)
	}
}

func TestUserRepositoryUpdateProfileAndPassword(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)
	u := createUserForTest(t, db, "Before", "update@example.com")

	if err := repo.UpdateProfile(u.ID, "After", "+62-899", "Jl. Baru"); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if err := repo.UpdatePasswordHash(u.ID, "new-hash"); err != nil {
		t.Fatalf("update password hash: %v", err)
	}

	loaded, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Name != "After" || loaded.Phone != "+62-899" || loaded.Address != "Jl. Baru" {
		t.Fatalf("unexpected profile after update: %+v", loaded)
	}
	if loaded.PasswordHash != "new-hash" {
		t.Fatalf("password hash not updated: %q", loaded.PasswordHash)
	}
	if loaded.Email != "update@example.com" {
		t.Fatalf("email must not change on profile update, got %q", loaded.Email)
	}
}
