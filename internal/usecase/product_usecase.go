package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/query"
	"furnimarket/internal/domain/repository"
	"furnimarket/internal/domain/service"
	"furnimarket/internal/domain/status"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	analyzer    service.ImageAnalyzer
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	analyzer service.ImageAnalyzer,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		analyzer:    analyzer,
	}
}

type ProductImageInput struct {
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
}

type ListingInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Category    string             `json:"category"`
	Condition   string             `json:"condition"`
	Color       string             `json:"color"`
	Dimensions  *entity.Dimensions `json:"dimensions"`
	Tags        []string           `json:"tags"`
}

func (in ListingInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.Validation("title is required", nil)
	}
	if in.Price <= 0 {
		return errors.Validation("price must be a positive number", nil)
	}
	if !entity.ProductCategory(in.Category).Valid() {
		return errors.Validation("unknown category", nil)
	}
	if !entity.ProductCondition(in.Condition).Valid() {
		return errors.Validation("unknown condition", nil)
	}
	if d := in.Dimensions; d != nil {
		for _, v := range []*float64{d.Height, d.Width, d.Depth} {
			if v != nil && *v <= 0 {
				return errors.Validation("dimensions must be positive when present", nil)
			}
		}
	}
	return nil
}

func (uc *ProductUseCase) CreateListing(ctx context.Context, sellerID string, input ListingInput, images []ProductImageInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}
	if seller.Status != entity.UserActive {
		return nil, errors.Forbidden("Suspended accounts cannot publish listings", nil)
	}

	product := entity.NewProduct(sellerID)
	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Category = entity.ProductCategory(input.Category)
	product.Condition = entity.ProductCondition(input.Condition)
	product.Color = input.Color
	product.Dimensions = input.Dimensions
	product.Tags = dedupeTags(input.Tags)

	productImages := make([]entity.ProductImage, len(images))
	for i, img := range images {
		productImages[i] = entity.ProductImage{
			ID:           uuid.New().String(),
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}
	product.Images = productImages

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateListing(ctx context.Context, id, sellerID string, input ListingInput, images []ProductImageInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Category = entity.ProductCategory(input.Category)
	product.Condition = entity.ProductCondition(input.Condition)
	product.Color = input.Color
	product.Dimensions = input.Dimensions
	product.Tags = dedupeTags(input.Tags)
	product.UpdatedAt = time.Now()

	if len(images) > 0 {
		productImages := make([]entity.ProductImage, len(images))
		for i, img := range images {
			productImages[i] = entity.ProductImage{
				ID:           uuid.New().String(),
				URL:          img.URL,
				DisplayOrder: img.DisplayOrder,
			}
		}
		product.Images = productImages
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) Browse(ctx context.Context, state query.State) (query.Result[*entity.Product], error) {
	// Shoppers only ever see live inventory.
	return uc.productRepo.List(ctx, state.WithStatus(string(entity.ProductActive)))
}

func (uc *ProductUseCase) MyListings(ctx context.Context, sellerID string, st entity.ProductStatus, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListBySellerID(ctx, sellerID, st, limit, offset)
}

// MarkSold is the seller-side shortcut; it still routes through the machine.
func (uc *ProductUseCase) MarkSold(ctx context.Context, id, sellerID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	if err := status.TransitionProduct(product, entity.ProductSold); err != nil {
		return nil, err
	}

	if err := uc.productRepo.UpdateStatus(ctx, id, entity.ProductSold); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) DeleteListing(ctx context.Context, id, requesterID string, isAdmin bool) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.SellerID != requesterID && !isAdmin {
		return errors.Forbidden("You don't have permission to delete this listing", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

// AutofillDraft runs the image analyzer over an uploaded photo and merges the
// suggestion into the draft: a scalar field is overwritten only if the user
// has not filled it yet, and suggested tags are unioned into existing tags.
// Analyzer failure degrades to the unchanged draft; manual entry always works.
func (uc *ProductUseCase) AutofillDraft(ctx context.Context, draft ListingInput, image io.Reader, contentType string) (ListingInput, error) {
	if uc.analyzer == nil {
		return draft, nil
	}

	suggestion, err := uc.analyzer.Analyze(ctx, image, contentType)
	if err != nil {
		logger.Warn("Image analyzer unavailable, keeping draft as-is: %v", err)
		return draft, nil
	}

	return MergeSuggestion(draft, suggestion), nil
}

// MergeSuggestion applies the only-if-empty / tag-union rules. Suggested enum
// values that are not in the closed sets are dropped rather than propagated.
func MergeSuggestion(draft ListingInput, s *service.ListingSuggestion) ListingInput {
	if s == nil {
		return draft
	}

	if draft.Title == "" {
		draft.Title = s.Title
	}
	if draft.Description == "" {
		draft.Description = s.Description
	}
	if draft.Price == 0 && s.Price > 0 {
		draft.Price = s.Price
	}
	if draft.Category == "" && entity.ProductCategory(s.Category).Valid() {
		draft.Category = s.Category
	}
	if draft.Condition == "" && entity.ProductCondition(s.Condition).Valid() {
		draft.Condition = s.Condition
	}
	if draft.Color == "" {
		draft.Color = s.Color
	}

	if draft.Dimensions == nil && (s.Height > 0 || s.Width > 0 || s.Depth > 0) {
		d := &entity.Dimensions{}
		if s.Height > 0 {
			h := s.Height
			d.Height = &h
		}
		if s.Width > 0 {
			w := s.Width
			d.Width = &w
		}
		if s.Depth > 0 {
			dp := s.Depth
			d.Depth = &dp
		}
		draft.Dimensions = d
	}

	draft.Tags = dedupeTags(append(draft.Tags, s.Tags...))
	return draft
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, tag)
	}
	return result
}
