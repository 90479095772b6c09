package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/faizhadyan1212/StuMa-Api/internal/http/response"
	"github.com/faizhadyan1212/StuMa-Api/internal/observability"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthServiceInterface
}

func NewAuthHandler(authSvc service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		observability.RecordAuthRegister(r.Context(), "bad_request")
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
		return
	}

	user, err := h.authSvc.Register(r.Context(), service.RegisterInput{
		Name:     body.Name,
		Phone:    body.Phone,
		Address:  body.Address,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingRegisterFields), errors.Is(err, service.ErrInvalidEmail):
			observability.RecordAuthRegister(r.Context(), "bad_request")
			response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "All fields are required.")
		case errors.Is(err, repository.ErrEmailTaken):
			observability.RecordAuthRegister(r.Context(), "conflict")
			observability.Audit(r, "auth.register.conflict")
			response.Error(w, r, http.StatusConflict, "CONFLICT", "Email is already registered.")
		default:
			observability.RecordAuthRegister(r.Context(), "error")
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to register user")
		}
		return
	}

	observability.RecordAuthRegister(r.Context(), "success")
	observability.Audit(r, "auth.register.success", "user_id", user.ID)
	response.Success(w, r, http.StatusCreated, "User registered successfully", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		observability.RecordAuthLogin(r.Context(), "bad_request")
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
		return
	}

	result, err := h.authSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			observability.RecordAuthLogin(r.Context(), "bad_request")
			response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required.")
		case errors.Is(err, repository.ErrUserNotFound):
			observability.RecordAuthLogin(r.Context(), "not_found")
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			observability.RecordAuthLogin(r.Context(), "failure")
			observability.Audit(r, "auth.login.failed", "reason", "invalid_credentials")
			response.Error(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		default:
			observability.RecordAuthLogin(r.Context(), "error")
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to log in")
		}
		return
	}

	observability.RecordAuthLogin(r.Context(), "success")
	observability.Audit(r, "auth.login.success", "user_id", result.User.ID)
	response.JSON(w, r, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Login successful",
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}
