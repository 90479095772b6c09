package service

import (
	"context"
	"errors"
	"testing"

	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/security"
)

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, userRepo := newAuthServiceForTest(t)

	user, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}
	stored, err := userRepo.FindByEmail("budi@example.com")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Fatal("password must not be stored in plaintext")
	}
	ok, err := security.VerifyPassword(stored.PasswordHash, "s3cret-pass")
	if err != nil || !ok {
		t.Fatalf("stored hash must verify, ok=%v err=%v", ok, err)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, userRepo := newAuthServiceForTest(t)
	input := validRegisterInput()
	input.Email = "  Budi@Example.COM "

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := userRepo.FindByEmail("budi@example.com"); err != nil {
		t.Fatalf("expected lowercased email lookup to succeed: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mutations := []func(*RegisterInput){
		func(in *RegisterInput) { in.Name = " " },
		func(in *RegisterInput) { in.Phone = "" },
		func(in *RegisterInput) { in.Address = "" },
		func(in *RegisterInput) { in.Email = "" },
		func(in *RegisterInput) { in.Password = "" },
	}
	for i, mutate := range mutations {
		input := validRegisterInput()
		mutate(&input)
		if _, err := svc.Register(ctx, input); !errors.Is(err, ErrMissingRegisterFields) {
			t.Fatalf("case %d: expected ErrMissingRegisterFields, got %v", i, err)
		}
	}

	input := validRegisterInput()
	input.Email = "not-an-address"
	if _, err := svc.Register(ctx, input); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	second := validRegisterInput()
	second.Name = "Someone Else"
	if _, err := svc.Register(ctx, second); !errors.Is(err, repository.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(ctx, "budi@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.ID != registered.ID {
		t.Fatalf("user mismatch: got %d want %d", result.User.ID, registered.ID)
	}

	claims, err := svc.jwtMgr.Parse(result.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id from claims: %v", err)
	}
	if id != registered.ID {
		t.Fatalf("token subject mismatch: got %d want %d", id, registered.ID)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty email, got %v", err)
	}
	if _, err := svc.Login(ctx, "budi@example.com", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty password, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@example.com", "pw"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Login(ctx, "budi@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
