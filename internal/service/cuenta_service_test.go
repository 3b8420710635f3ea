package service_test

import (
	"context"
	"testing"

	"huertohogar/internal/apperror"
	"huertohogar/internal/dto"
	"huertohogar/internal/model"
	"huertohogar/internal/repository"
	"huertohogar/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsuarioRepo is an in-memory UsuarioRepository for testing. Email
// comparisons are exact and case-sensitive, like the SQLite `=` operator.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUsuarioRepo) FindByCredentials(_ context.Context, email, password string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUsuarioRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.FindByEmail(ctx, email)
	return u != nil, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.usuarios, id)
	return nil
}

func (r *stubUsuarioRepo) UpdatePerfil(_ context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) error {
	if u, ok := r.usuarios[id]; ok {
		u.Nombre, u.Apellido = req.Nombre, req.Apellido
		u.Telefono, u.Direccion = req.Telefono, req.Direccion
		u.Ciudad, u.Region = req.Ciudad, req.Region
	}
	return nil
}

func (r *stubUsuarioRepo) UpdatePassword(_ context.Context, id uuid.UUID, password string) error {
	if u, ok := r.usuarios[id]; ok {
		u.Password = password
	}
	return nil
}

func (r *stubUsuarioRepo) Count(context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func registroValido() dto.RegistroRequest {
	return dto.RegistroRequest{
		Nombre:   "María",
		Apellido: "Pérez",
		Email:    "a@x.com",
		Password: "123456",
		Telefono: "+56911112222",
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestValidarRegistroOrdenDeReglas(t *testing.T) {
	svc := service.NewCuentaService(newStubUsuarioRepo())

	casos := []struct {
		nombre  string
		mutar   func(*dto.RegistroRequest)
		mensaje string
	}{
		{"nombre en blanco", func(r *dto.RegistroRequest) { r.Nombre = "" }, "El nombre es obligatorio"},
		{"email en blanco", func(r *dto.RegistroRequest) { r.Email = "" }, "El email es obligatorio"},
		{"email sin arroba", func(r *dto.RegistroRequest) { r.Email = "no-es-email" }, "Email inválido"},
		{"password corta", func(r *dto.RegistroRequest) { r.Password = "12345" }, "La contraseña debe tener al menos 6 caracteres"},
		{"telefono en blanco", func(r *dto.RegistroRequest) { r.Telefono = "" }, "El teléfono es obligatorio"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			req := registroValido()
			c.mutar(&req)
			err := svc.ValidarRegistro(req)
			require.Error(t, err)
			assert.Equal(t, c.mensaje, err.Error())
		})
	}

	assert.NoError(t, svc.ValidarRegistro(registroValido()))
}

// La primera regla violada gana: con nombre y teléfono en blanco a la vez,
// el mensaje es el del nombre.
func TestValidarRegistroPrimeraViolacionGana(t *testing.T) {
	svc := service.NewCuentaService(newStubUsuarioRepo())

	req := registroValido()
	req.Nombre = ""
	req.Telefono = ""
	err := svc.ValidarRegistro(req)
	require.Error(t, err)
	assert.Equal(t, "El nombre es obligatorio", err.Error())
}

func TestRegistrarEmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewCuentaService(repo)
	ctx := context.Background()

	primero, err := svc.Registrar(ctx, registroValido())
	require.NoError(t, err)

	segundo := registroValido()
	segundo.Nombre = "Otra"
	_, err = svc.Registrar(ctx, segundo)
	assert.ErrorIs(t, err, apperror.ErrEmailRegistrado)

	// El primer registro sigue recuperable por email.
	u, err := svc.ObtenerPorEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, primero.ID, u.ID)
	assert.Equal(t, "María", u.Nombre)
}

// El chequeo de duplicado es sensible a mayúsculas: A@X.COM no choca con
// a@x.com. Asimetría conocida frente a la búsqueda de productos, que es
// insensible.
func TestRegistrarEmailDuplicadoEsCaseSensitive(t *testing.T) {
	svc := service.NewCuentaService(newStubUsuarioRepo())
	ctx := context.Background()

	_, err := svc.Registrar(ctx, registroValido())
	require.NoError(t, err)

	otro := registroValido()
	otro.Email = "A@X.COM"
	_, err = svc.Registrar(ctx, otro)
	assert.NoError(t, err)
}

func TestLoginExacto(t *testing.T) {
	svc := service.NewCuentaService(newStubUsuarioRepo())
	ctx := context.Background()

	creado, err := svc.Registrar(ctx, registroValido())
	require.NoError(t, err)

	u, err := svc.Login(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, creado.ID, u.ID)
}

func TestLoginPasswordIncorrectaDevuelveAusente(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewCuentaService(repo)
	ctx := context.Background()

	creado, err := svc.Registrar(ctx, registroValido())
	require.NoError(t, err)

	u, err := svc.Login(ctx, "a@x.com", "equivocada")
	assert.NoError(t, err, "login fallido es ausencia, no error")
	assert.Nil(t, u)

	// Nada se mutó.
	guardado := repo.usuarios[creado.ID]
	assert.Equal(t, "123456", guardado.Password)
	assert.Equal(t, "María", guardado.Nombre)
}

func TestActualizarPerfilNoTocaPassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewCuentaService(repo)
	ctx := context.Background()

	creado, err := svc.Registrar(ctx, registroValido())
	require.NoError(t, err)

	err = svc.ActualizarPerfil(ctx, creado.ID, dto.ActualizarPerfilRequest{
		Nombre:    "María José",
		Apellido:  "Pérez",
		Telefono:  "+56933334444",
		Direccion: "Calle Nueva 456",
		Ciudad:    "Valparaíso",
		Region:    "Valparaíso",
	})
	require.NoError(t, err)

	u := repo.usuarios[creado.ID]
	assert.Equal(t, "María José", u.Nombre)
	assert.Equal(t, "Valparaíso", u.Ciudad)
	assert.Equal(t, "123456", u.Password)
}
