package service

import (
	"context"

	"huertohogar/internal/apperror"
	"huertohogar/internal/dto"
	"huertohogar/internal/model"
	"huertohogar/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService defines the business logic contract for the product catalog.
type CatalogoService interface {
	// Listar returns the whole catalog ordered by nombre ascending.
	Listar(ctx context.Context) ([]model.Producto, error)
	// Disponibles returns available products that still have stock.
	Disponibles(ctx context.Context) ([]model.Producto, error)
	// ObtenerPorID returns (nil, nil) when the product does not exist.
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// Buscar matches nombre or descripcion, case-insensitive substring.
	Buscar(ctx context.Context, texto string) ([]model.Producto, error)
	// FiltrarPorCategoria filters by exact category; model.CategoriaTodos
	// means no filter.
	FiltrarPorCategoria(ctx context.Context, categoria string) ([]model.Producto, error)
	Crear(ctx context.Context, p *model.Producto) (uuid.UUID, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	// DescontarStock subtracts cantidad from the product's stock. The
	// subtraction is unconditional: no sufficient-stock check and no floor
	// at zero. Stock going negative is the source system's behavior.
	DescontarStock(ctx context.Context, id uuid.UUID, cantidad int) error
	// ActualizarStock overwrites the stock count (admin restock).
	ActualizarStock(ctx context.Context, id uuid.UUID, nuevoStock int) error
	// Observar delivers a fresh full catalog snapshot after every committed
	// write, for the lifetime of ctx.
	Observar(ctx context.Context) <-chan []model.Producto
}

type catalogoService struct {
	repo repository.ProductoRepository
}

func NewCatalogoService(repo repository.ProductoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return s.repo.List(ctx, dto.ProductoFilter{})
}

func (s *catalogoService) Disponibles(ctx context.Context) ([]model.Producto, error) {
	return s.repo.ListDisponibles(ctx)
}

func (s *catalogoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogoService) Buscar(ctx context.Context, texto string) ([]model.Producto, error) {
	return s.repo.List(ctx, dto.ProductoFilter{Texto: texto})
}

func (s *catalogoService) FiltrarPorCategoria(ctx context.Context, categoria string) ([]model.Producto, error) {
	return s.repo.List(ctx, dto.ProductoFilter{Categoria: categoria})
}

func (s *catalogoService) Crear(ctx context.Context, p *model.Producto) (uuid.UUID, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return uuid.Nil, apperror.Store("crear producto", err)
	}
	return p.ID, nil
}

func (s *catalogoService) Actualizar(ctx context.Context, p *model.Producto) error {
	if err := s.repo.Update(ctx, p); err != nil {
		return apperror.Store("actualizar producto", err)
	}
	return nil
}

func (s *catalogoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Store("eliminar producto", err)
	}
	return nil
}

func (s *catalogoService) DescontarStock(ctx context.Context, id uuid.UUID, cantidad int) error {
	if err := s.repo.AjustarStock(ctx, id, -cantidad); err != nil {
		return apperror.Store("descontar stock", err)
	}
	return nil
}

func (s *catalogoService) ActualizarStock(ctx context.Context, id uuid.UUID, nuevoStock int) error {
	if err := s.repo.SetStock(ctx, id, nuevoStock); err != nil {
		return apperror.Store("actualizar stock", err)
	}
	return nil
}

func (s *catalogoService) Observar(ctx context.Context) <-chan []model.Producto {
	return s.repo.Observar(ctx)
}
