package repository

import (
	"context"
	"errors"
	"sync"

	"huertohogar/internal/livequery"
	"huertohogar/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PedidoRepository defines the data access contract for orders and their
// lines. Creation methods take the caller's transaction: the order workflow
// persists header, lines, and stock adjustments as one atomic unit.
type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	CreateDetallesTx(tx *gorm.DB, detalles []model.DetallePedido) error
	// FindByID returns (nil, nil) when no order has the id. Lines come preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// ListByUsuario returns the user's orders, newest first.
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Pedido, error)
	Detalles(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error)
	// UpdateEstado writes the status string unconditionally.
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error

	// ObservarPorUsuario subscribes to newest-first snapshots of one user's
	// orders, re-delivered after every committed order write.
	ObservarPorUsuario(ctx context.Context, usuarioID uuid.UUID) <-chan []model.Pedido
	// RefrescarUsuario pushes a fresh snapshot to that user's observers.
	RefrescarUsuario(ctx context.Context, usuarioID uuid.UUID)

	DB() *gorm.DB
}

type pedidoRepo struct {
	db *gorm.DB

	mu    sync.Mutex
	feeds map[uuid.UUID]*livequery.Feed[[]model.Pedido]
}

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepo{db: db, feeds: make(map[uuid.UUID]*livequery.Feed[[]model.Pedido])}
}

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) CreateDetallesTx(tx *gorm.DB, detalles []model.DetallePedido) error {
	return tx.Create(&detalles).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Detalles").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Detalles(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Find(&detalles).Error
	return detalles, err
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	var p model.Pedido
	err := r.db.WithContext(ctx).Select("id", "usuario_id").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gorm.ErrRecordNotFound
	}
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ?", id).
		Update("estado", estado).Error; err != nil {
		return err
	}
	r.RefrescarUsuario(ctx, p.UsuarioID)
	return nil
}

func (r *pedidoRepo) ObservarPorUsuario(ctx context.Context, usuarioID uuid.UUID) <-chan []model.Pedido {
	ch := r.feedFor(usuarioID).Subscribe(ctx)
	r.RefrescarUsuario(ctx, usuarioID)
	return ch
}

func (r *pedidoRepo) RefrescarUsuario(ctx context.Context, usuarioID uuid.UUID) {
	pedidos, err := r.ListByUsuario(ctx, usuarioID)
	if err != nil {
		log.Error().Err(err).Str("usuario", usuarioID.String()).Msg("refresco de pedidos falló")
		return
	}
	r.feedFor(usuarioID).Publish(pedidos)
}

func (r *pedidoRepo) feedFor(usuarioID uuid.UUID) *livequery.Feed[[]model.Pedido] {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.feeds[usuarioID]
	if !ok {
		f = livequery.NewFeed[[]model.Pedido]()
		r.feeds[usuarioID] = f
	}
	return f
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
