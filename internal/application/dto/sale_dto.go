package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea de la venta a crear. El precio unitario viaja en
// el request: es el snapshot al momento de la venta, no se relee del catálogo.
type SaleLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para crear una venta.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"` // opcional
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=efectivo tarjeta transferencia"`
	Lines         []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SaleLineResponse salida de una línea de venta.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta completa con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	UserID        string             `json:"user_id"`
	UserName      string             `json:"user_name"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Lines         []SaleLineResponse `json:"lines"`
}

// SaleSummaryResponse una fila del listado de ventas (sin líneas).
type SaleSummaryResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Total         decimal.Decimal `json:"total"`
	CustomerName  string          `json:"customer_name,omitempty"`
	UserName      string          `json:"user_name"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleSummaryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
