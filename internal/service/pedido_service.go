package service

import (
	"context"
	"errors"
	"time"

	"huertohogar/internal/apperror"
	"huertohogar/internal/dto"
	"huertohogar/internal/model"
	"huertohogar/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoService defines the business logic contract for orders: the checkout
// workflow plus lifecycle and history queries.
type PedidoService interface {
	// CrearPedido turns cart lines into a persisted order. Header, lines,
	// and stock decrements commit as one atomic transaction; on any failure
	// nothing is written. An empty cart is rejected.
	CrearPedido(ctx context.Context, req dto.CrearPedidoRequest) (uuid.UUID, error)
	// ListarPorUsuario returns the user's orders, newest first.
	ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Pedido, error)
	// ObtenerPorID returns (nil, nil) when the order does not exist.
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	Detalles(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error)
	// ActualizarEstado writes the status unconditionally; illegal transitions
	// (e.g. Entregado → Cancelado) are not blocked at this layer.
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error
	// CancelarPedido sets estado to Cancelado. Idempotent: cancelling an
	// already-cancelled order succeeds and leaves it Cancelado.
	CancelarPedido(ctx context.Context, id uuid.UUID) error
	// ObservarPorUsuario delivers fresh newest-first snapshots of the user's
	// orders after every committed order write.
	ObservarPorUsuario(ctx context.Context, usuarioID uuid.UUID) <-chan []model.Pedido
}

type pedidoService struct {
	repo         repository.PedidoRepository
	productoRepo repository.ProductoRepository
}

func NewPedidoService(repo repository.PedidoRepository, productoRepo repository.ProductoRepository) PedidoService {
	return &pedidoService{repo: repo, productoRepo: productoRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *pedidoService) CrearPedido(ctx context.Context, req dto.CrearPedidoRequest) (uuid.UUID, error) {
	if len(req.Items) == 0 {
		return uuid.Nil, apperror.ErrCarritoVacio
	}

	// Total is fixed here, from the cart's own price snapshots, and never
	// recomputed later.
	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.Subtotal())
	}

	pedido := model.Pedido{
		UsuarioID:        req.UsuarioID,
		Total:            total,
		Estado:           model.EstadoPendiente,
		DireccionEntrega: req.DireccionEntrega,
		MetodoPago:       req.MetodoPago,
		CreatedAt:        time.Now(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &pedido); err != nil {
			return err
		}

		detalles := make([]model.DetallePedido, 0, len(req.Items))
		for _, item := range req.Items {
			detalles = append(detalles, model.DetallePedido{
				PedidoID:       pedido.ID,
				ProductoID:     item.Producto.ID,
				NombreProducto: item.Producto.Nombre,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.Producto.Precio,
				Subtotal:       item.Subtotal(),
			})
		}
		if err := s.repo.CreateDetallesTx(tx, detalles); err != nil {
			return err
		}

		for _, item := range req.Items {
			if err := s.productoRepo.DecrementStockTx(tx, item.Producto.ID, item.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return uuid.Nil, apperror.Store("crear pedido", txErr)
	}

	// Push fresh snapshots now that the transaction committed.
	s.productoRepo.Refrescar(ctx)
	s.repo.RefrescarUsuario(ctx, req.UsuarioID)

	log.Info().
		Str("pedido", pedido.ID.String()).
		Str("usuario", req.UsuarioID.String()).
		Str("total", total.String()).
		Int("lineas", len(req.Items)).
		Msg("pedido creado")

	return pedido.ID, nil
}

func (s *pedidoService) ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Pedido, error) {
	return s.repo.ListByUsuario(ctx, usuarioID)
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *pedidoService) Detalles(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error) {
	return s.repo.Detalles(ctx, pedidoID)
}

func (s *pedidoService) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	err := s.repo.UpdateEstado(ctx, id, estado)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNoEncontrado
	}
	if err != nil {
		return apperror.Store("actualizar estado", err)
	}
	return nil
}

func (s *pedidoService) CancelarPedido(ctx context.Context, id uuid.UUID) error {
	return s.ActualizarEstado(ctx, id, model.EstadoCancelado)
}

func (s *pedidoService) ObservarPorUsuario(ctx context.Context, usuarioID uuid.UUID) <-chan []model.Pedido {
	return s.repo.ObservarPorUsuario(ctx, usuarioID)
}
