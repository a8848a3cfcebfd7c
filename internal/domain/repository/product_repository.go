package repository

import "github.com/tu-usuario/ferreteria-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// DecrementStock y RestoreStock deben poder ejecutarse dentro de la misma
// transacción que escribe la venta (pasar el repo atado a la tx).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// ListActive lista solo productos con active = true, ordenados por nombre.
	ListActive(limit, offset int) ([]*entity.Product, error)
	// SoftDelete marca el producto como inactivo. ErrNotFound si no existe.
	SoftDelete(id string) error
	// DecrementStock descuenta qty de forma condicional (stock >= qty) en una
	// sola sentencia. Retorna ErrNotFound si el producto no existe o un
	// *domain.InsufficientStockError si el stock no alcanza.
	DecrementStock(id string, qty int) error
	// RestoreStock devuelve qty unidades al stock (cancelación de venta).
	RestoreStock(id string, qty int) error
}
