package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ferreteria-pos/internal/domain"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/repository"
)

// StoreInfo datos del local que encabezan el comprobante.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// SaleLineForPDF línea de venta enriquecida con el nombre del producto.
type SaleLineForPDF struct {
	entity.SaleLine
	ProductName string
}

// ReceiptGenerator genera el PDF del comprobante de venta.
type ReceiptGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		store StoreInfo,
		sale *entity.Sale,
		customerName, userName string,
		lines []SaleLineForPDF,
	) ([]byte, error)
}

// ReceiptUseCase genera el comprobante imprimible de una venta.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	generator    ReceiptGenerator
	store        StoreInfo
}

// NewReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	generator ReceiptGenerator,
	store StoreInfo,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		generator:    generator,
		store:        store,
	}
}

// DownloadReceiptPDF recupera la venta con sus líneas, resuelve los nombres y
// genera el PDF. Retorna domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	rawLines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}

	enriched := make([]SaleLineForPDF, 0, len(rawLines))
	for _, l := range rawLines {
		name := "Producto " + l.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(l.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, SaleLineForPDF{SaleLine: *l, ProductName: name})
	}

	customerName := ""
	if sale.CustomerID != "" {
		if customer, cErr := uc.customerRepo.GetByID(sale.CustomerID); cErr == nil && customer != nil {
			customerName = customer.Name
		}
	}
	userName := ""
	if user, uErr := uc.userRepo.GetByID(sale.UserID); uErr == nil && user != nil {
		userName = user.Name
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, uc.store, sale, customerName, userName, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("venta_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
