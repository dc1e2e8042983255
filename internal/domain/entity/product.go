package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Mutated only through admin operations;
// Price and CountInStock must never be negative. Rating is 0–5.
type Product struct {
	ID           string
	Name         string
	Category     string
	Brand        string
	Image        string // durable URL on the asset host
	Price        decimal.Decimal
	Rating       decimal.Decimal
	NumReviews   int
	CountInStock int
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
