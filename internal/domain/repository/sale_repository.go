package repository

import "github.com/tu-usuario/ferreteria-pos/internal/domain/entity"

// SaleListRow es una fila del listado de ventas con los nombres de cliente y
// cajero ya resueltos (join en la consulta, no N+1 desde la aplicación).
type SaleListRow struct {
	Sale         entity.Sale
	CustomerName string // vacío si la venta no tiene cliente
	UserName     string
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Create y CreateLine se invocan dentro de la transacción de venta; el resto
// son lecturas sobre el pool.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error)
	// UpdateStatus cambia el estado solo si el estado actual es fromStatus
	// (guarda de transición a nivel de fila). ErrInvalidState si no aplicó.
	UpdateStatus(id, fromStatus, toStatus string) error
	// ListRecent lista ventas ordenadas por fecha descendente con nombres de
	// cliente y cajero.
	ListRecent(limit, offset int) ([]*SaleListRow, error)
}
