package reports

import (
	"github.com/tu-usuario/ferreteria-pos/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/repository"
)

// DashboardUseCase arma el resumen del día para el panel principal.
type DashboardUseCase struct {
	repo          repository.ReportRepository
	lowStockLimit int
}

// NewDashboardUseCase construye el caso de uso. lowStockLimit es el umbral de
// stock bajo configurado para el local.
func NewDashboardUseCase(repo repository.ReportRepository, lowStockLimit int) *DashboardUseCase {
	if lowStockLimit <= 0 {
		lowStockLimit = 5
	}
	return &DashboardUseCase{repo: repo, lowStockLimit: lowStockLimit}
}

// Summary devuelve ventas y facturación del día, conteos del catálogo y los
// productos con stock bajo.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryResponse, error) {
	count, revenue, err := uc.repo.SalesToday()
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.CountActiveProducts()
	if err != nil {
		return nil, err
	}
	customers, err := uc.repo.CountActiveCustomers()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.LowStockProducts(uc.lowStockLimit, 20)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardSummaryResponse{
		SalesToday:      count,
		RevenueToday:    revenue,
		ActiveProducts:  products,
		ActiveCustomers: customers,
		LowStock:        make([]dto.ProductResponse, 0, len(lowStock)),
	}
	for _, p := range lowStock {
		resp.LowStock = append(resp.LowStock, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
			Barcode:     p.Barcode,
			Active:      p.Active,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return resp, nil
}
