package repository

import (
	"context"
	"errors"

	"huertohogar/internal/dto"
	"huertohogar/internal/livequery"
	"huertohogar/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	// FindByID returns (nil, nil) when no product has the id.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	// ListDisponibles returns available products with stock > 0.
	ListDisponibles(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SetStock overwrites the stock count (admin restock).
	SetStock(ctx context.Context, id uuid.UUID, stock int) error
	// AjustarStock adds delta to the product's stock outside any transaction.
	// The arithmetic is unconditional: no sufficient-stock check, no floor
	// at zero. Stock can go negative.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) error
	// DecrementStockTx subtracts cantidad inside the caller's transaction.
	// Same unconditional arithmetic as AjustarStock.
	DecrementStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error

	// Observar subscribes to full name-ordered snapshots of the catalog,
	// re-delivered after every committed write, for the lifetime of ctx.
	Observar(ctx context.Context) <-chan []model.Producto
	// Refrescar re-queries the catalog and pushes a snapshot to observers.
	// Called internally after every mutation; services call it themselves
	// after transactions that bypass the mutating methods here.
	Refrescar(ctx context.Context)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct {
	db   *gorm.DB
	feed *livequery.Feed[[]model.Producto]
}

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepo{db: db, feed: livequery.NewFeed[[]model.Producto]()}
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}
	r.Refrescar(ctx)
	return nil
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	var productos []model.Producto

	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if filter.Texto != "" {
		// SQLite LIKE is case-insensitive for ASCII; LOWER() covers the rest.
		pat := "%" + filter.Texto + "%"
		q = q.Where("LOWER(nombre) LIKE LOWER(?) OR LOWER(descripcion) LIKE LOWER(?)", pat, pat)
	}
	if filter.Categoria != "" && filter.Categoria != model.CategoriaTodos {
		q = q.Where("categoria = ?", filter.Categoria)
	}

	err := q.Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListDisponibles(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("disponible = ? AND stock > 0", true).
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return err
	}
	r.Refrescar(ctx)
	return nil
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id).Error; err != nil {
		return err
	}
	r.Refrescar(ctx)
	return nil
}

func (r *productoRepo) SetStock(ctx context.Context, id uuid.UUID, stock int) error {
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).
		Update("stock", stock).Error
	if err != nil {
		return err
	}
	r.Refrescar(ctx)
	return nil
}

func (r *productoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) error {
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
	if err != nil {
		return err
	}
	r.Refrescar(ctx)
	return nil
}

func (r *productoRepo) DecrementStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock - ?", cantidad)).Error
}

func (r *productoRepo) Observar(ctx context.Context) <-chan []model.Producto {
	ch := r.feed.Subscribe(ctx)
	r.Refrescar(ctx)
	return ch
}

func (r *productoRepo) Refrescar(ctx context.Context) {
	productos, err := r.List(ctx, dto.ProductoFilter{})
	if err != nil {
		log.Error().Err(err).Msg("refresco de catálogo falló")
		return
	}
	r.feed.Publish(productos)
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
