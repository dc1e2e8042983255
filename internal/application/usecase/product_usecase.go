package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// DefaultPageSize applies when a browse request does not name a page size.
const DefaultPageSize = 10

// ProductUseCase covers the public catalog (browse, detail) and the admin
// CRUD. Rating and NumReviews are derived values and never set through the
// admin surface.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Browse resolves a filtered, sorted catalog page. The count is taken with
// the same filter as the page so the pagination metadata always agrees with
// the items. Malformed filter values fail with ErrInvalidInput.
func (uc *ProductUseCase) Browse(in dto.BrowseProductsRequest) (*dto.BrowseProductsResponse, error) {
	filter, err := catalog.ParseFilter(catalog.FilterParams{
		Name:     in.Name,
		Category: in.Category,
		Brand:    in.Brand,
		Price:    in.Price,
		Rating:   in.Rating,
		Sort:     in.Sort,
	})
	if err != nil {
		return nil, err
	}

	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}

	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	page := catalog.Paginate(total, pageSize, in.Page)

	items, err := uc.repo.Search(filter, page.Limit(), page.Skip())
	if err != nil {
		return nil, err
	}
	brands, err := uc.repo.Brands()
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.Categories()
	if err != nil {
		return nil, err
	}

	out := &dto.BrowseProductsResponse{
		Items:      make([]dto.ProductResponse, 0, len(items)),
		Brands:     brands,
		Categories: categories,
		Page: dto.PageResponse{
			Page:    page.Page,
			Pages:   page.Pages,
			Total:   page.ProductCount,
			HasPrev: page.HasPrev,
			HasNext: page.HasNext,
			Window:  page.Window,
		},
	}
	for _, p := range items {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// GetByID fetches one product by id.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Create registers a new product. New products start unrated.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.CountInStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Brand:        in.Brand,
		Image:        in.Image,
		Price:        in.Price,
		CountInStock: in.CountInStock,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update applies a partial product update.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CountInStock != nil {
		if *in.CountInStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.CountInStock = *in.CountInStock
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product from the catalog. Line-item snapshots on placed
// orders keep rendering after deletion.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Brand:        p.Brand,
		Image:        p.Image,
		Price:        p.Price,
		Rating:       p.Rating,
		NumReviews:   p.NumReviews,
		CountInStock: p.CountInStock,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
