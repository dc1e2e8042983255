package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo serves the read-only dashboard aggregates.
type SummaryRepo struct {
	q Querier
}

// NewSummaryRepository builds the dashboard read adapter.
func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

// CountOrders returns the total number of orders.
func (r *SummaryRepo) CountOrders(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders`)
}

// CountProducts returns the total number of products.
func (r *SummaryRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountUsers returns the total number of accounts.
func (r *SummaryRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *SummaryRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// TotalSales sums the total price over all orders.
func (r *SummaryRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(total_price), 0) FROM orders`
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total sales: %w", err)
	}
	return total, nil
}

// SalesByMonth groups orders by placement month, oldest bucket first.
func (r *SummaryRepo) SalesByMonth(ctx context.Context) ([]repository.MonthlySales, error) {
	query := `
		SELECT to_char(created_at, 'YYYY/MM') AS month, COALESCE(SUM(total_price), 0), COUNT(*)
		FROM orders
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by month: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlySales
	for rows.Next() {
		var m repository.MonthlySales
		if err := rows.Scan(&m.Month, &m.TotalSales, &m.OrderCount); err != nil {
			return nil, fmt.Errorf("scan month: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
