package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ferreteria-pos/internal/domain"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, date, total, customer_id, user_id, status, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.Total, nullIfEmpty(sale.CustomerID), sale.UserID,
		sale.Status, sale.PaymentMethod, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice,
		line.Subtotal, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, date, total, customer_id, user_id, status, payment_method, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var customerID sql.NullString
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Date, &s.Total, &customerID, &s.UserID, &s.Status, &s.PaymentMethod,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.CustomerID = customerID.String
	return &s, nil
}

// GetLinesBySaleID obtiene las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal, created_at
		FROM sale_lines WHERE sale_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice,
			&l.Subtotal, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado solo si el estado actual coincide con
// fromStatus. Cero filas afectadas significa que la venta no existe o que otra
// transacción ya la movió de estado; en ambos casos la transición no aplicó.
func (r *SaleRepo) UpdateStatus(id, fromStatus, toStatus string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, fromStatus, toStatus,
	)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.InvalidStateError{SaleID: id, Status: fromStatus}
	}
	return nil
}

// ListRecent lista ventas por fecha descendente con nombres de cliente y cajero.
func (r *SaleRepo) ListRecent(limit, offset int) ([]*repository.SaleListRow, error) {
	query := `
		SELECT s.id, s.date, s.total, s.customer_id, s.user_id, s.status, s.payment_method,
		       s.created_at, s.updated_at, COALESCE(c.name, ''), u.name
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		JOIN users u ON u.id = s.user_id
		ORDER BY s.date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleListRow
	for rows.Next() {
		var row repository.SaleListRow
		var customerID sql.NullString
		if err := rows.Scan(&row.Sale.ID, &row.Sale.Date, &row.Sale.Total, &customerID,
			&row.Sale.UserID, &row.Sale.Status, &row.Sale.PaymentMethod,
			&row.Sale.CreatedAt, &row.Sale.UpdatedAt, &row.CustomerName, &row.UserName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		row.Sale.CustomerID = customerID.String
		list = append(list, &row)
	}
	return list, rows.Err()
}
