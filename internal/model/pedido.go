package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estado values for Pedido. Transitions are unconditional string writes;
// this layer does not forbid illegal transitions. Terminal states are
// Entregado and Cancelado.
const (
	EstadoPendiente     = "Pendiente"
	EstadoEnPreparacion = "En preparación"
	EstadoEnCamino      = "En camino"
	EstadoEntregado     = "Entregado"
	EstadoCancelado     = "Cancelado"
)

// Pedido is an order header. Total is fixed at creation time and equals the
// sum of its line subtotals; it is never recomputed afterwards.
type Pedido struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UsuarioID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	DireccionEntrega string          `gorm:"not null"`
	MetodoPago       string
	CreatedAt        time.Time `gorm:"index"`

	Usuario  *Usuario        `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }

func (p *Pedido) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DetallePedido is one order line. NombreProducto and PrecioUnitario are
// copied from the product at purchase time so order history stays accurate
// when the product is later edited.
type DetallePedido struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	NombreProducto string          `gorm:"not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }

func (d *DetallePedido) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
