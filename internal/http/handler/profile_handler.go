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

type ProfileHandler struct {
	userSvc service.UserServiceInterface
}

func NewProfileHandler(userSvc service.UserServiceInterface) *ProfileHandler {
	return &ProfileHandler{userSvc: userSvc}
}

// Get returns the caller's own record. The bare object shape (no envelope)
// predates this service and is kept for existing clients.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing auth context")
		return
	}
	user, err := h.userSvc.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			observability.RecordProfileEvent(r.Context(), "get", "not_found")
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		observability.RecordProfileEvent(r.Context(), "get", "error")
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load profile")
		return
	}
	observability.RecordProfileEvent(r.Context(), "get", "success")
	response.JSON(w, r, http.StatusOK, user)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing auth context")
		return
	}
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
		return
	}

	if err := h.userSvc.UpdateProfile(r.Context(), userID, body.Name, body.Phone, body.Address); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingProfileFields):
			observability.RecordProfileEvent(r.Context(), "update", "bad_request")
			response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Name, phone, and address are required.")
		case errors.Is(err, repository.ErrUserNotFound):
			observability.RecordProfileEvent(r.Context(), "update", "not_found")
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			observability.RecordProfileEvent(r.Context(), "update", "error")
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update profile")
		}
		return
	}

	observability.RecordProfileEvent(r.Context(), "update", "success")
	observability.Audit(r, "profile.update.success", "user_id", userID)
	response.Success(w, r, http.StatusOK, "Profile updated successfully", nil)
}

func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing auth context")
		return
	}
	var body struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
		return
	}

	if err := h.userSvc.ChangePassword(r.Context(), userID, body.OldPassword, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingPasswordFields):
			observability.RecordProfileEvent(r.Context(), "change_password", "bad_request")
			response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Old password and new password are required.")
		case errors.Is(err, service.ErrWrongPassword):
			observability.RecordProfileEvent(r.Context(), "change_password", "unauthorized")
			observability.Audit(r, "profile.change_password.rejected", "user_id", userID)
			response.Error(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Old password is incorrect.")
		case errors.Is(err, repository.ErrUserNotFound):
			observability.RecordProfileEvent(r.Context(), "change_password", "not_found")
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			observability.RecordProfileEvent(r.Context(), "change_password", "error")
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update password")
		}
		return
	}

	observability.RecordProfileEvent(r.Context(), "change_password", "success")
	observability.Audit(r, "profile.change_password.success", "user_id", userID)
	response.Success(w, r, http.StatusOK, "Password updated successfully", nil)
}
