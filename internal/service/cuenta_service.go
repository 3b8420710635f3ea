package service

import (
	"context"

	"huertohogar/internal/apperror"
	"huertohogar/internal/dto"
	"huertohogar/internal/model"
	"huertohogar/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CuentaService defines the business logic contract for accounts:
// registration, login, and profile maintenance.
type CuentaService interface {
	// Registrar validates the request, rejects duplicate emails
	// (case-sensitive exact match), and persists the new account.
	Registrar(ctx context.Context, req dto.RegistroRequest) (*model.Usuario, error)
	// Login matches email and password exactly. A miss returns (nil, nil):
	// absence, not an error. Nothing is ever mutated.
	Login(ctx context.Context, email, password string) (*model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ActualizarPerfil(ctx context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) error
	ActualizarPassword(ctx context.Context, id uuid.UUID, nueva string) error
	ContarUsuarios(ctx context.Context) (int64, error)
	// ValidarRegistro runs the pre-registration checks without touching the
	// store. First violated rule wins, in field order.
	ValidarRegistro(req dto.RegistroRequest) error
}

type cuentaService struct {
	repo     repository.UsuarioRepository
	validate *validator.Validate
}

func NewCuentaService(repo repository.UsuarioRepository) CuentaService {
	return &cuentaService{repo: repo, validate: validator.New()}
}

// mensajesValidacion maps field+tag to the human-readable reason shown to the
// user. One message per violated rule.
var mensajesValidacion = map[string]string{
	"Nombre/required":   "El nombre es obligatorio",
	"Email/required":    "El email es obligatorio",
	"Email/contains":    "Email inválido",
	"Password/min":      "La contraseña debe tener al menos 6 caracteres",
	"Telefono/required": "El teléfono es obligatorio",
}

func (s *cuentaService) ValidarRegistro(req dto.RegistroRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return apperror.NewValidation("", "datos de registro inválidos")
	}
	// ValidationErrors come back in struct field order, so the first entry
	// is the first violated rule: nombre → email → password → teléfono.
	first := errs[0]
	msg, ok := mensajesValidacion[first.Field()+"/"+first.Tag()]
	if !ok {
		msg = "datos de registro inválidos"
	}
	return apperror.NewValidation(first.Field(), msg)
}

func (s *cuentaService) Registrar(ctx context.Context, req dto.RegistroRequest) (*model.Usuario, error) {
	if err := s.ValidarRegistro(req); err != nil {
		return nil, err
	}

	existe, err := s.repo.ExistsEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store("verificar email", err)
	}
	if existe {
		return nil, apperror.ErrEmailRegistrado
	}

	u := &model.Usuario{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Password:  req.Password,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Ciudad:    req.Ciudad,
		Region:    req.Region,
		EsAdmin:   req.EsAdmin,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apperror.Store("registrar usuario", err)
	}
	return u, nil
}

func (s *cuentaService) Login(ctx context.Context, email, password string) (*model.Usuario, error) {
	u, err := s.repo.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, apperror.Store("login", err)
	}
	return u, nil
}

func (s *cuentaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *cuentaService) ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *cuentaService) Actualizar(ctx context.Context, u *model.Usuario) error {
	if err := s.repo.Update(ctx, u); err != nil {
		return apperror.Store("actualizar usuario", err)
	}
	return nil
}

func (s *cuentaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Store("eliminar usuario", err)
	}
	return nil
}

func (s *cuentaService) ActualizarPerfil(ctx context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) error {
	if err := s.repo.UpdatePerfil(ctx, id, req); err != nil {
		return apperror.Store("actualizar perfil", err)
	}
	return nil
}

func (s *cuentaService) ActualizarPassword(ctx context.Context, id uuid.UUID, nueva string) error {
	if err := s.repo.UpdatePassword(ctx, id, nueva); err != nil {
		return apperror.Store("actualizar contraseña", err)
	}
	return nil
}

func (s *cuentaService) ContarUsuarios(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
