package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faizhadyan1212/StuMa-Api/internal/http/response"
	"github.com/faizhadyan1212/StuMa-Api/internal/observability"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
	"github.com/faizhadyan1212/StuMa-Api/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing auth context")
		return
	}
	var body struct {
		Name        string  `json:"name"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Stock       int     `json:"stock"`
		Price       float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
		return
	}

	item, err := h.svc.Create(r.Context(), userID, service.CreateItemInput{
		Name:        body.Name,
		Category:    body.Category,
		Description: body.Description,
		Stock:       body.Stock,
		Price:       body.Price,
	})
	if err != nil {
		if isItemValidationError(err) {
			response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to add item")
		return
	}

	observability.Audit(r, "item.create.success", "item_id", item.ID, "user_id", userID)
	response.Success(w, r, http.StatusCreated, "Item added successfully", item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	res, err := h.svc.ListPaged(r.Context(), pageReq)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list items")
		return
	}
	if len(res.Items) == 0 {
		response.JSON(w, r, http.StatusOK, response.Envelope{
			Success: true,
			Message: "No items found",
			Data:    []repository.ItemListing{},
		})
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{
		"success":     true,
		"data":        res.Items,
		"page":        res.Page,
		"page_size":   res.PageSize,
		"total":       res.Total,
		"total_pages": res.TotalPages,
	})
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	itemID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid item id")
		return
	}

	item, err := h.svc.GetByID(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Item not found")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load item")
		return
	}
	response.Success(w, r, http.StatusOK, "", item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing auth context")
		return
	}
	itemID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid item id")
		return
	}
	var body struct {
		Name        *string  `json:"name"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Stock       *int     `json:"stock"`
		Price       *float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload")
		return
	}

	item, err := h.svc.Update(r.Context(), itemID, userID, service.UpdateItemInput{
		Name:        body.Name,
		Category:    body.Category,
		Description: body.Description,
		Stock:       body.Stock,
		Price:       body.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			// One answer for "absent" and "not yours": existence of other
			// sellers' items must not leak.
			observability.Audit(r, "item.update.rejected", "item_id", itemID, "user_id", userID)
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Item not found or not authorized")
		case isItemValidationError(err):
			response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update item")
		}
		return
	}

	observability.Audit(r, "item.update.success", "item_id", itemID, "user_id", userID)
	response.Success(w, r, http.StatusOK, "Item updated successfully", item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing auth context")
		return
	}
	itemID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid item id")
		return
	}

	if err := h.svc.DeleteByID(r.Context(), itemID, userID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			observability.Audit(r, "item.delete.rejected", "item_id", itemID, "user_id", userID)
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Item not found or not authorized")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete item")
		return
	}

	observability.Audit(r, "item.delete.success", "item_id", itemID, "user_id", userID)
	response.Success(w, r, http.StatusOK, "Item deleted successfully", nil)
}

func isItemValidationError(err error) bool {
	return errors.Is(err, service.ErrItemInvalidName) ||
		errors.Is(err, service.ErrItemInvalidCategory) ||
		errors.Is(err, service.ErrItemInvalidDescription) ||
		errors.Is(err, service.ErrItemInvalidStock) ||
		errors.Is(err, service.ErrItemInvalidPrice) ||
		errors.Is(err, service.ErrItemNoUpdates)
}
