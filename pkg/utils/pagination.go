package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"furnimarket/internal/domain/query"
)

// PaginationParams carries the page window of a list request.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams reads page/limit from the request, clamped to the same
// bounds the query layer enforces so handlers and console tables agree on
// page sizes.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > query.MaxPageSize {
		pageSize = query.DefaultPageSize
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}
