package handler

import (
	"github.com/labstack/echo/v4"

	"furnimarket/internal/usecase"
	"furnimarket/pkg/response"
)

type UserHandler struct {
	userUseCase      *usecase.UserUseCase
	favoritesService *usecase.FavoritesService
}

func NewUserHandler(userUseCase *usecase.UserUseCase, favoritesService *usecase.FavoritesService) *UserHandler {
	return &UserHandler{
		userUseCase:      userUseCase,
		favoritesService: favoritesService,
	}
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// SignIn bootstraps the profile on first sight of a UID and merges any guest
// favorites carried on the device into the account, then discards the local
// set. Calling it again is harmless; the merge only moves what is present.
func (h *UserHandler) SignIn(c echo.Context) error {
	uid := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	user, err := h.userUseCase.EnsureProfile(c.Request().Context(), uid, email, "")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.favoritesService.Reconcile(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.ProfileInput{
		Username: req.Username,
		FullName: req.FullName,
		Bio:      req.Bio,
		Phone:    req.Phone,
		City:     req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// SignOut clears device-local state. Account favorites stay on the account.
func (h *UserHandler) SignOut(c echo.Context) error {
	if err := h.favoritesService.HandleSignOut(); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Signed out",
	})
}
