package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAuthNeverRejectsGuests(t *testing.T) {
	handler := func(c echo.Context) error {
		uid, _ := c.Get("uid").(string)
		return c.String(http.StatusOK, "uid="+uid)
	}

	cases := map[string]string{
		"no header":        "",
		"malformed header": "Basic abc123",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/favorites", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, OptionalAuth(nil)(handler)(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "uid=", rec.Body.String(), "request must proceed as guest")
		})
	}
}
