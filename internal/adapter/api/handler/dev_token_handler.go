package handler

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/infrastructure/firebase"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/response"
)

// DevTokenHandler mints custom tokens so clients can sign in without a real
// identity provider. Only mounted in non-production environments.
type DevTokenHandler struct {
	firebaseAuth *firebase.AuthClient
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.AuthClient) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.AuthClient) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) MintToken(c echo.Context) error {
	var req struct {
		UID string `json:"uid" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.firebaseAuth.MintCustomToken(c.Request().Context(), req.UID)
	if err != nil {
		return response.Error(c, errors.Internal("Could not mint token", err))
	}

	return response.Success(c, map[string]string{
		"uid":   req.UID,
		"token": token,
	})
}
