package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/internal/usecase"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/response"
	"furnimarket/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	userUseCase    *usecase.UserUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, userUseCase *usecase.UserUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		userUseCase:    userUseCase,
	}
}

type productImageRequest struct {
	URL          string `json:"url" validate:"required,url"`
	DisplayOrder int    `json:"display_order"`
}

type listingRequest struct {
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description"`
	Price       float64               `json:"price" validate:"required,gt=0"`
	Category    string                `json:"category" validate:"required,oneof=sofa table chair bed storage lighting decor other"`
	Condition   string                `json:"condition" validate:"required,oneof=new like_new good fair"`
	Color       string                `json:"color"`
	Dimensions  *entity.Dimensions    `json:"dimensions"`
	Tags        []string              `json:"tags"`
	Images      []productImageRequest `json:"images"`
}

func (r listingRequest) toInput() (usecase.ListingInput, []usecase.ProductImageInput) {
	images := make([]usecase.ProductImageInput, len(r.Images))
	for i, img := range r.Images {
		images[i] = usecase.ProductImageInput{
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}
	return usecase.ListingInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Condition:   r.Condition,
		Color:       r.Color,
		Dimensions:  r.Dimensions,
		Tags:        r.Tags,
	}, images
}

func (h *ProductHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)
	input, images := req.toInput()

	product, err := h.productUseCase.CreateListing(c.Request().Context(), sellerID, input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateListing(c echo.Context) error {
	id := c.Param("id")

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)
	input, images := req.toInput()

	product, err := h.productUseCase.UpdateListing(c.Request().Context(), id, sellerID, input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

// Browse is the public catalog: category filter plus title search over active
// listings only.
func (h *ProductHandler) Browse(c echo.Context) error {
	state := query.NewState()
	if category := c.QueryParam("category"); category != "" {
		state = state.WithCategory(category)
	}
	if q := c.QueryParam("q"); q != "" {
		state = state.WithSearch(q)
	}

	pagination := utils.GetPaginationParams(c)
	state = state.WithPageSize(pagination.PageSize).WithPage(pagination.Page)

	result, err := h.productUseCase.Browse(c.Request().Context(), state)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, result.Rows, result.Total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) ListMyListings(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	st := entity.ProductStatus(c.QueryParam("status"))
	if st != "" && !st.Valid() {
		return response.Error(c, errors.BadRequest("Unknown status filter", nil))
	}

	products, total, err := h.productUseCase.MyListings(
		c.Request().Context(),
		sellerID,
		st,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) MarkSold(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	product, err := h.productUseCase.MarkSold(c.Request().Context(), c.Param("id"), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteListing(c echo.Context) error {
	requesterID := c.Get("uid").(string)

	isAdmin, err := h.userUseCase.IsAdmin(c.Request().Context(), requesterID)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.DeleteListing(c.Request().Context(), c.Param("id"), requesterID, isAdmin); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted successfully",
	})
}

// AutofillDraft accepts a multipart photo plus the draft-so-far as form
// fields, and returns the draft with analyzer suggestions merged in. The
// endpoint never fails on analyzer trouble; worst case the draft comes back
// unchanged.
func (h *ProductHandler) AutofillDraft(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("An image is required for autofill", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Could not read uploaded image", err))
	}
	defer src.Close()

	draft := usecase.ListingInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
		Color:       c.FormValue("color"),
	}
	if priceStr := c.FormValue("price"); priceStr != "" {
		if price, err := strconv.ParseFloat(priceStr, 64); err == nil {
			draft.Price = price
		}
	}

	filled, err := h.productUseCase.AutofillDraft(
		c.Request().Context(),
		draft,
		src,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, filled)
}
