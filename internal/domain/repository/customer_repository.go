package repository

import "github.com/tu-usuario/ferreteria-pos/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// ListActive lista solo clientes con active = true, ordenados por nombre.
	ListActive(limit, offset int) ([]*entity.Customer, error)
	// SoftDelete marca el cliente como inactivo. ErrNotFound si no existe.
	SoftDelete(id string) error
}
