package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. La creación siempre persiste "completada"; "pendiente"
// existe en el esquema pero ningún flujo la produce hoy. Única transición
// válida: completada -> cancelada.
const (
	SaleStatusPending   = "pendiente"
	SaleStatusCompleted = "completada"
	SaleStatusCancelled = "cancelada"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}

// Sale representa la cabecera de una venta. Total debe ser igual a la suma de
// los subtotales de sus líneas.
type Sale struct {
	ID            string
	Date          time.Time
	Total         decimal.Decimal
	CustomerID    string // opcional: vacío = venta de mostrador sin cliente
	UserID        string // cajero que registró la venta, obligatorio
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanCancel indica si la venta admite la transición a cancelada.
func (s *Sale) CanCancel() bool {
	return s.Status == SaleStatusCompleted
}

// SaleLine representa una línea de venta: producto, cantidad y precio unitario
// al momento de la venta. Las líneas son inmutables una vez escritas; cancelar
// la venta no las borra, quedan como registro histórico.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal // snapshot del precio, independiente de cambios posteriores
	Subtotal  decimal.Decimal // Quantity * UnitPrice
	CreatedAt time.Time
}
