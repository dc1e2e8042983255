package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlySales is one bucket of the sales chart, keyed "YYYY/MM".
type MonthlySales struct {
	Month      string
	TotalSales decimal.Decimal
	OrderCount int
}

// SummaryRepository serves the read-only queries behind the admin sales
// dashboard.
type SummaryRepository interface {
	CountOrders(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	SalesByMonth(ctx context.Context) ([]MonthlySales, error)
}
