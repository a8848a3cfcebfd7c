package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pos/internal/application/reports"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
)

type fakeReportRepo struct {
	salesCount   int
	revenue      decimal.Decimal
	products     int
	customers    int
	lowStock     []*entity.Product
	gotThreshold int
}

func (r *fakeReportRepo) SalesToday() (int, decimal.Decimal, error) {
	return r.salesCount, r.revenue, nil
}
func (r *fakeReportRepo) CountActiveProducts() (int, error)  { return r.products, nil }
func (r *fakeReportRepo) CountActiveCustomers() (int, error) { return r.customers, nil }
func (r *fakeReportRepo) LowStockProducts(threshold, limit int) ([]*entity.Product, error) {
	r.gotThreshold = threshold
	return r.lowStock, nil
}

func TestDashboardSummary(t *testing.T) {
	repo := &fakeReportRepo{
		salesCount: 7,
		revenue:    decimal.RequireFromString("125430.50"),
		products:   42,
		customers:  15,
		lowStock: []*entity.Product{
			{ID: "prod-a", Name: "Martillo", Stock: 2, Active: true},
		},
	}
	uc := reports.NewDashboardUseCase(repo, 5)

	out, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 7, out.SalesToday)
	assert.True(t, out.RevenueToday.Equal(decimal.RequireFromString("125430.50")))
	assert.Equal(t, 42, out.ActiveProducts)
	assert.Equal(t, 15, out.ActiveCustomers)
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "Martillo", out.LowStock[0].Name)
	assert.Equal(t, 5, repo.gotThreshold, "debe usar el umbral configurado")
}

// Umbral no configurado (<= 0): se usa el valor por defecto.
func TestDashboardSummary_UmbralPorDefecto(t *testing.T) {
	repo := &fakeReportRepo{revenue: decimal.Zero}
	uc := reports.NewDashboardUseCase(repo, 0)

	_, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotThreshold)
}
