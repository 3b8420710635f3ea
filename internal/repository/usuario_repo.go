package repository

import (
	"context"
	"errors"

	"huertohogar/internal/dto"
	"huertohogar/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for accounts.
// All email comparisons use `=`, which in SQLite is case-sensitive: the same
// asymmetry the source system has against its case-insensitive text search.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	// FindByID returns (nil, nil) when no account has the id.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	// FindByEmail returns (nil, nil) when no account has the email.
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	// FindByCredentials matches email and plain-text password exactly;
	// (nil, nil) on a miss, never an error for bad credentials.
	FindByCredentials(ctx context.Context, email, password string) (*model.Usuario, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *model.Usuario) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePerfil(ctx context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) error
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	Count(ctx context.Context) (int64, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByCredentials(ctx context.Context, email, password string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		First(&u, "email = ? AND password = ?", email, password).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, "id = ?", id).Error
}

func (r *usuarioRepo) UpdatePerfil(ctx context.Context, id uuid.UUID, req dto.ActualizarPerfilRequest) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"nombre":    req.Nombre,
			"apellido":  req.Apellido,
			"telefono":  req.Telefono,
			"direccion": req.Direccion,
			"ciudad":    req.Ciudad,
			"region":    req.Region,
		}).Error
}

func (r *usuarioRepo) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Update("password", password).Error
}

func (r *usuarioRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Count(&count).Error
	return count, err
}
