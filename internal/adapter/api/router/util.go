package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"furnimarket/internal/infrastructure/firebase"
)

// OptionalAuth verifies a bearer token when one is present and sets the uid
// in context, but never rejects the request. Used on endpoints that serve
// guests and signed-in users alike.
func OptionalAuth(authClient *firebase.AuthClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			uid, email, err := authClient.VerifyToken(c.Request().Context(), parts[1])
			if err != nil {
				// Invalid token degrades to guest rather than failing.
				return next(c)
			}

			c.Set("uid", uid)
			if email != "" {
				c.Set("email", email)
			}

			return next(c)
		}
	}
}
