package entity

import "time"

// Customer representa un cliente de la ferretería. Solo el nombre es obligatorio;
// las ventas de mostrador pueden no tener cliente asociado.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	Email     string
	TaxID     string // NIT o cédula
	Active    bool   // soft delete
	CreatedAt time.Time
	UpdatedAt time.Time
}
