package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/faizhadyan1212/StuMa-Api/internal/http/middleware"
	"github.com/faizhadyan1212/StuMa-Api/internal/repository"
)

func currentUserID(r *http.Request) (uint, bool) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return 0, false
	}
	return ident.UserID, true
}

func parsePathID(input string) (uint, error) {
	id64, err := strconv.ParseUint(input, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id64), nil
}

func parsePageRequest(r *http.Request) (repository.PageRequest, error) {
	page := repository.DefaultPage
	pageSize := repository.DefaultPageSize
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repository.PageRequest{}, errors.New("page must be a positive integer")
		}
		page = v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("page_size")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repository.PageRequest{}, errors.New("page_size must be a positive integer")
		}
		if v > repository.MaxPageSize {
			return repository.PageRequest{}, fmt.Errorf("page_size must be <= %d", repository.MaxPageSize)
		}
		pageSize = v
	}
	return repository.PageRequest{Page: page, PageSize: pageSize}, nil
}
