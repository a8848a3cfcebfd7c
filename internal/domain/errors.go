package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidState       = errors.New("transición de estado inválida")
)

// InsufficientStockError indica que un producto no tiene stock para cubrir la
// cantidad solicitada. Lleva las cantidades para que el cliente pueda ajustar
// el pedido. errors.Is(err, ErrInsufficientStock) == true.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvalidStateError indica un intento de transición de estado no permitida
// sobre una venta (ej: cancelar una venta que no está completada).
// errors.Is(err, ErrInvalidState) == true.
type InvalidStateError struct {
	SaleID string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("la venta %s está en estado %s: solo se pueden cancelar ventas completadas", e.SaleID, e.Status)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }
