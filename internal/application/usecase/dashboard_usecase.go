package usecase

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// DashboardUseCase aggregates the back-office summary: entity counts, the
// running sales total and a per-month sales series.
type DashboardUseCase struct {
	repo repository.SummaryRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.SummaryRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// SalesSummary resolves the dashboard payload.
func (uc *DashboardUseCase) SalesSummary(ctx context.Context) (*dto.SalesSummaryDTO, error) {
	orders, err := uc.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	months, err := uc.repo.SalesByMonth(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.SalesSummaryDTO{
		OrdersCount:   orders,
		ProductsCount: products,
		UsersCount:    users,
		OrdersPrice:   total,
		SalesData:     make([]dto.MonthlySalesDTO, 0, len(months)),
	}
	for _, m := range months {
		out.SalesData = append(out.SalesData, dto.MonthlySalesDTO{
			Month:      m.Month,
			TotalSales: m.TotalSales,
			OrderCount: m.OrderCount,
		})
	}
	return out, nil
}
