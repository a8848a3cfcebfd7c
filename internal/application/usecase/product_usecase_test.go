package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pos/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pos/internal/application/usecase"
	"github.com/tu-usuario/ferreteria-pos/internal/domain"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
)

// fakeProductRepo almacena productos en memoria, con borrado lógico.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if p.Barcode != "" {
		for _, existing := range r.products {
			if existing.Barcode == p.Barcode {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode && p.Active {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListActive(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) SoftDelete(id string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int) error { return nil }
func (r *fakeProductRepo) RestoreStock(id string, qty int) error   { return nil }

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductCreate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Martillo de uña",
		Price:    precio("8990.00"),
		Stock:    12,
		Category: "herramientas",
		Barcode:  "7791234567890",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Active, "los productos nacen activos")
	assert.Equal(t, 12, out.Stock)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "", Category: "herramientas"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío debe rechazarse")

	_, err = uc.Create(dto.CreateProductRequest{Name: "Martillo", Category: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría vacía debe rechazarse")

	_, err = uc.Create(dto.CreateProductRequest{Name: "Martillo", Category: "h", Price: precio("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	_, err = uc.Create(dto.CreateProductRequest{Name: "Martillo", Category: "h", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo debe rechazarse")
}

func TestProductCreate_BarcodeDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", Category: "h", Barcode: "123"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Name: "B", Category: "h", Barcode: "123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update no toca el stock: el stock solo cambia por el flujo de ventas.
func TestProductUpdate_NoModificaStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Martillo", Category: "herramientas", Price: precio("5.00"), Stock: 10,
	})
	require.NoError(t, err)

	nuevoNombre := "Martillo carpintero"
	nuevoPrecio := precio("6.50")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  &nuevoNombre,
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Martillo carpintero", out.Name)
	assert.True(t, out.Price.Equal(precio("6.50")))
	assert.Equal(t, 10, out.Stock, "update de catálogo no debe alterar el stock")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	nombre := "X"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente retorna nil sin error")
}

// Soft delete: el producto desaparece del listado pero sigue recuperable por
// ID para ventas históricas.
func TestProductDelete_BorradoLogico(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Martillo", Category: "herramientas", Price: precio("5.00"), Stock: 10,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items, "el producto inactivo no debe aparecer en el listado")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el producto inactivo sigue siendo consultable por ID")
	assert.False(t, got.Active)

	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestProductList_SoloActivos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	a, _ := uc.Create(dto.CreateProductRequest{Name: "Alicate", Category: "h", Price: precio("3.00")})
	_, err := uc.Create(dto.CreateProductRequest{Name: "Brocha", Category: "p", Price: precio("2.00")})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(a.ID))

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Brocha", list.Items[0].Name)
}
