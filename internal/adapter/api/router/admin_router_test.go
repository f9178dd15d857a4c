package router

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"furnimarket/internal/adapter/api/middleware"
)

func TestAdminTablesShareSelectionRoutes(t *testing.T) {
	e := echo.New()
	SetupAdminRouter(e, middleware.NewAuthMiddleware(nil), middleware.NewAdminMiddleware(nil))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, table := range []string{"products", "orders", "users"} {
		assert.True(t, registered["POST /v1/admin/"+table+"/:id/select"], "%s toggle route", table)
		assert.True(t, registered["DELETE /v1/admin/"+table+"/selection"], "%s clear route", table)
		assert.True(t, registered["GET /v1/admin/"+table+"/bulk/summary"], "%s summary route", table)
		assert.True(t, registered["POST /v1/admin/"+table+"/bulk"], "%s bulk route", table)
	}
}
