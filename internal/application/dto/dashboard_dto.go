package dto

import "github.com/shopspring/decimal"

// MonthlySalesDTO one bucket of the sales bar chart, keyed "YYYY/MM".
type MonthlySalesDTO struct {
	Month      string          `json:"month"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int             `json:"order_count"`
}

// SalesSummaryDTO is the back-office dashboard payload.
type SalesSummaryDTO struct {
	OrdersCount   int               `json:"orders_count"`
	ProductsCount int               `json:"products_count"`
	UsersCount    int               `json:"users_count"`
	OrdersPrice   decimal.Decimal   `json:"orders_price"`
	SalesData     []MonthlySalesDTO `json:"sales_data"`
}
