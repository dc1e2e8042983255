package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BrowseProductsRequest are the optional catalog filters as they arrive from
// the query string. Empty strings mean "not supplied".
type BrowseProductsRequest struct {
	Name     string `query:"name"`
	Category string `query:"category"`
	Brand    string `query:"brand"`
	Price    string `query:"price"`  // band token "<low>-<high>"
	Rating   string `query:"rating"` // minimum inclusive threshold
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
}

// CreateProductRequest is the admin input for a new product.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"required"`
	Brand        string          `json:"brand" validate:"required"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price"`
	CountInStock int             `json:"count_in_stock"`
	Description  string          `json:"description"`
}

// UpdateProductRequest is the admin input for a partial product update.
// Rating and NumReviews are derived from reviews, not set directly.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	Brand        *string          `json:"brand"`
	Image        *string          `json:"image"`
	Price        *decimal.Decimal `json:"price"`
	CountInStock *int             `json:"count_in_stock"`
	Description  *string          `json:"description"`
}

// ProductResponse is the outward product shape.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price"`
	Rating       decimal.Decimal `json:"rating"`
	NumReviews   int             `json:"num_reviews"`
	CountInStock int             `json:"count_in_stock"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BrowseProductsResponse is a filtered catalog page plus the distinct
// brand/category lists the filter UI needs.
type BrowseProductsResponse struct {
	Items      []ProductResponse `json:"items"`
	Brands     []string          `json:"brands"`
	Categories []string          `json:"categories"`
	Page       PageResponse      `json:"page"`
}
