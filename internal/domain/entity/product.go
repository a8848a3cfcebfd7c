package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la ferretería.
// Stock nunca es negativo: el decremento se hace con un update condicional
// dentro de la transacción de venta, no desde la aplicación.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta vigente, >= 0
	Stock       int
	Category    string
	Barcode     string // código de barras, único si está presente
	Active      bool   // soft delete: false = eliminado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
