package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas para el dashboard (solo lectura, sobre el pool).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesToday cuenta y suma las ventas del día en curso, excluyendo canceladas.
func (r *ReportRepo) SalesToday() (int, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales
		WHERE date >= date_trunc('day', now()) AND status <> 'cancelada'`
	var count int
	var revenue decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query).Scan(&count, &revenue); err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales today: %w", err)
	}
	return count, revenue, nil
}

// CountActiveProducts cuenta productos con active = true.
func (r *ReportRepo) CountActiveProducts() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products WHERE active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountActiveCustomers cuenta clientes con active = true.
func (r *ReportRepo) CountActiveCustomers() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers WHERE active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// LowStockProducts lista productos activos con stock en o bajo el umbral.
func (r *ReportRepo) LowStockProducts(threshold, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE active AND stock <= $1
		ORDER BY stock, name LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
