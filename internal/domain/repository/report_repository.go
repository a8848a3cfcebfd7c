package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
)

// ReportRepository define consultas agregadas para el dashboard.
type ReportRepository interface {
	// SalesToday cuenta las ventas del día y suma su facturación,
	// excluyendo las canceladas.
	SalesToday() (count int, revenue decimal.Decimal, err error)
	CountActiveProducts() (int, error)
	CountActiveCustomers() (int, error)
	// LowStockProducts lista productos activos con stock <= threshold,
	// ordenados por stock ascendente.
	LowStockProducts(threshold, limit int) ([]*entity.Product, error)
}
