package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse resumen del día para el panel principal.
type DashboardSummaryResponse struct {
	SalesToday      int               `json:"sales_today"`
	RevenueToday    decimal.Decimal   `json:"revenue_today"`
	ActiveProducts  int               `json:"active_products"`
	ActiveCustomers int               `json:"active_customers"`
	LowStock        []ProductResponse `json:"low_stock"`
}
