package server

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/staffhub/internal/validation"
	"github.com/smallbiznis/staffhub/pkg/db/pagination"
)

const (
	queryPage    = "page"
	queryPerPage = "perPage"
)

// parsePositiveInt returns 0 when value is empty.
func parsePositiveInt(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed < 1 {
		return 0, false
	}
	return parsed, true
}

// pageFromQuery reads page and perPage. Defaults and the per page ceiling
// come from the pagination config holder.
func (s *Server) pageFromQuery(c *gin.Context) (pagination.Page, error) {
	verrs := validation.NewErrors()

	number, ok := parsePositiveInt(c.Query(queryPage))
	if !ok {
		verrs.Add(queryPage, "The page field must be an integer of at least 1.")
	}
	perPage, ok := parsePositiveInt(c.Query(queryPerPage))
	if !ok {
		verrs.Add(queryPerPage, "The per page field must be an integer of at least 1.")
	}
	if verrs.HasErrors() {
		return pagination.Page{}, verrs
	}

	cfg := s.pagination.Get()
	page, err := pagination.NewPage(number, perPage, cfg.DefaultPerPage, cfg.MaxPerPage)
	if errors.Is(err, pagination.ErrInvalidPage) {
		return page, validation.NewError(queryPage, "The page field is too large.")
	}
	return page, err
}

// parseID rejects anything that is not a positive integer as not found.
func parseID(value string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrNotFound
	}
	return id, nil
}
