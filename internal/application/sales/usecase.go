package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ferreteria-pos/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pos/internal/domain"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/repository"
)

// SaleUseCase orquesta el flujo de venta: validación de líneas, cálculo de
// totales, persistencia atómica con decremento de stock, y la cancelación que
// restaura el stock. Es el único componente con flujo de control no trivial.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// CreateSale crea una venta completa. La reserva de stock ocurre al confirmar,
// no al armar el carrito: la verificación autoritativa es el update condicional
// dentro de la misma transacción que escribe la venta, así no hay ventana entre
// verificar y descontar. Validación todo-o-nada: si una línea falla, no se
// persiste nada.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if userID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// Cliente opcional; si viene, debe existir
	var customer *entity.Customer
	if in.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Validar la lista completa de líneas antes de cualquier mutación
	// (lecturas fuera de la tx; el decremento condicional dentro de la tx
	// cubre cualquier carrera posterior a esta validación).
	productsByID := make(map[string]*entity.Product, len(in.Lines))
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity < 1 || line.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.Stock < line.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   line.Quantity,
			}
		}
		productsByID[line.ProductID] = product
	}

	// Total = Σ cantidad × precio del request: snapshot del precio al momento
	// de la venta, independiente de cambios concurrentes en el catálogo.
	total := decimal.Zero
	for _, line := range in.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Date:          now,
		Total:         total,
		CustomerID:    in.CustomerID,
		UserID:        userID,
		Status:        entity.SaleStatusCompleted,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	lines := make([]*entity.SaleLine, 0, len(in.Lines))
	for _, line := range in.Lines {
		lines = append(lines, &entity.SaleLine{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			CreatedAt: now,
		})
	}

	// Unidad atómica: cabecera + líneas + decrementos. Cualquier error
	// (incluido un decremento que quedaría bajo cero) descarta todo.
	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, l := range lines {
			if err := saleRepo.CreateLine(l); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(l.ProductID, l.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(sale, lines, customer, user, productsByID), nil
}

// CancelSale cancela una venta completada: restaura el stock de cada línea y
// marca la venta como cancelada, todo en una transacción. Las líneas quedan
// intactas como registro histórico. Una segunda cancelación retorna
// ErrInvalidState, no éxito: el stock se restaura exactamente una vez.
func (uc *SaleUseCase) CancelSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !sale.CanCancel() {
		return nil, &domain.InvalidStateError{SaleID: sale.ID, Status: sale.Status}
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, l := range lines {
			if err := productRepo.RestoreStock(l.ProductID, l.Quantity); err != nil {
				return err
			}
		}
		// La guarda por estado en el update cubre la carrera entre dos
		// cancelaciones concurrentes: la segunda no afecta filas y aborta.
		return saleRepo.UpdateStatus(sale.ID, entity.SaleStatusCompleted, entity.SaleStatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	sale.Status = entity.SaleStatusCancelled
	return uc.assembleResponse(sale, lines)
}

// GetSale obtiene una venta con sus líneas y nombres de cliente y cajero.
func (uc *SaleUseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	return uc.assembleResponse(sale, lines)
}

// ListSales lista ventas por fecha descendente.
func (uc *SaleUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	rows, err := uc.saleRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleSummaryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.SaleSummaryResponse{
			ID:            row.Sale.ID,
			Date:          row.Sale.Date,
			Total:         row.Sale.Total,
			CustomerName:  row.CustomerName,
			UserName:      row.UserName,
			Status:        row.Sale.Status,
			PaymentMethod: row.Sale.PaymentMethod,
		})
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// assembleResponse resuelve cliente, cajero y nombres de producto para armar
// la respuesta completa de una venta ya persistida.
func (uc *SaleUseCase) assembleResponse(sale *entity.Sale, lines []*entity.SaleLine) (*dto.SaleResponse, error) {
	var customer *entity.Customer
	if sale.CustomerID != "" {
		customer, _ = uc.customerRepo.GetByID(sale.CustomerID)
	}
	user, err := uc.userRepo.GetByID(sale.UserID)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[string]*entity.Product, len(lines))
	for _, l := range lines {
		if _, ok := productsByID[l.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		productsByID[l.ProductID] = p
	}
	return uc.toResponse(sale, lines, customer, user, productsByID), nil
}

func (uc *SaleUseCase) toResponse(
	sale *entity.Sale,
	lines []*entity.SaleLine,
	customer *entity.Customer,
	user *entity.User,
	productsByID map[string]*entity.Product,
) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		Date:          sale.Date,
		Total:         sale.Total,
		CustomerID:    sale.CustomerID,
		UserID:        sale.UserID,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		Lines:         make([]dto.SaleLineResponse, 0, len(lines)),
	}
	if customer != nil {
		resp.CustomerName = customer.Name
	}
	if user != nil {
		resp.UserName = user.Name
	}
	for _, l := range lines {
		lineResp := dto.SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		}
		if p := productsByID[l.ProductID]; p != nil {
			lineResp.ProductName = p.Name
		}
		resp.Lines = append(resp.Lines, lineResp)
	}
	return resp
}
