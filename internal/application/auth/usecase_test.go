package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/ferreteria-pos/internal/application/auth"
	"github.com/tu-usuario/ferreteria-pos/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pos/internal/domain"
	"github.com/tu-usuario/ferreteria-pos/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/ferreteria-pos/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) seed(t *testing.T, email, password, role string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "user-" + email,
		Name:         "Usuario " + email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
	}
	r.users[u.ID] = u
	return u
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "ferreteria-pos-test"}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "cajero@ferreteria.local", "secreto123", entity.RoleVendedor, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Email: "cajero@ferreteria.local", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "cajero@ferreteria.local", out.User.Email)
	assert.Equal(t, entity.RoleVendedor, out.User.Role)

	// El token debe llevar el userID y el rol como claims
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleVendedor, role)
}

// Email inexistente y password incorrecto producen el mismo error: las
// credenciales no revelan si el email está registrado.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "cajero@ferreteria.local", "secreto123", entity.RoleVendedor, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "no-existe@x.com", Password: "secreto123"})
	_, errPassword := uc.Login(dto.LoginRequest{Email: "cajero@ferreteria.local", Password: "incorrecto"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPassword, "ambos fallos deben ser indistinguibles")
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "ex-empleado@ferreteria.local", "secreto123", entity.RoleVendedor, false)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "ex-empleado@ferreteria.local", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un usuario desactivado no debe poder iniciar sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Nuevo Cajero",
		Email:    "nuevo@ferreteria.local",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, out.Role, "el rol por defecto es vendedor")
	assert.True(t, out.Active)

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "cajero@ferreteria.local", "secreto123", entity.RoleVendedor, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "cajero@ferreteria.local",
		Password: "otro-secreto",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_Validaciones(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío debe rechazarse")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "x@x.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 8 caracteres debe rechazarse")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "x@x.com", Password: "secreto123", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	u := repo.seed(t, "cajero@ferreteria.local", "secreto123", entity.RoleAdmin, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.CurrentUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, out.Email)

	_, err = uc.CurrentUser("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
