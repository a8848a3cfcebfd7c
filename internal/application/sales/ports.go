package sales

import (
	"context"

	"github.com/tu-usuario/ferreteria-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos
// de ventas y productos. Si fn retorna error el runner hace rollback: la
// cabecera, las líneas y los cambios de stock se persisten todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
