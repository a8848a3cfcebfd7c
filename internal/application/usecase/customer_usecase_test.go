package usecase_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pos/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pos/internal/application/usecase"
	"github.com/tu-usuario/ferreteria-pos/internal/domain"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
)

// fakeCustomerRepo almacena clientes en memoria, con borrado lógico.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cc := *c
	r.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cc := *c
	r.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) ListActive(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.Active {
			cc := *c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCustomerRepo) SoftDelete(id string) error {
	c, ok := r.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Active = false
	return nil
}

func TestCustomerCreate(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	out, err := uc.Create(dto.CreateCustomerRequest{
		Name:  "Constructora El Clavo",
		Phone: "+56 9 1234 5678",
		TaxID: "76.543.210-K",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Active)

	// Solo el nombre es obligatorio
	_, err = uc.Create(dto.CreateCustomerRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCustomerRequest{Name: "Cliente de mostrador"})
	assert.NoError(t, err, "un cliente solo con nombre debe ser válido")
}

func TestCustomerUpdate(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Constructora El Clavo"})
	require.NoError(t, err)

	telefono := "+56 2 2345 6789"
	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Phone: &telefono})
	require.NoError(t, err)
	assert.Equal(t, telefono, out.Phone)
	assert.Equal(t, "Constructora El Clavo", out.Name, "los campos no enviados no deben cambiar")

	nombre := "X"
	missing, err := uc.Update("no-existe", dto.UpdateCustomerRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerDelete_BorradoLogico(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Constructora El Clavo"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID))

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items, "el cliente inactivo no debe listarse")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el cliente inactivo sigue consultable por ID (ventas históricas)")
	assert.False(t, got.Active)
}
