package utils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"furnimarket/internal/domain/query"
)

func paramsFor(t *testing.T, rawQuery string) PaginationParams {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return GetPaginationParams(c)
}

func TestPaginationClampsMatchQueryBounds(t *testing.T) {
	p := paramsFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, query.DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset)

	p = paramsFor(t, "page=-3&limit=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, query.DefaultPageSize, p.PageSize)

	p = paramsFor(t, "limit=5000")
	assert.Equal(t, query.DefaultPageSize, p.PageSize)

	p = paramsFor(t, "page=3&limit="+strconv.Itoa(query.MaxPageSize))
	assert.Equal(t, query.MaxPageSize, p.PageSize)
	assert.Equal(t, 2*query.MaxPageSize, p.Offset)
}
