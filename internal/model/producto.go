package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoriaTodos is the sentinel category meaning "no filter".
const CategoriaTodos = "Todos"

// Producto is a catalog item. Stock is decremented unconditionally at
// checkout and is not floored at zero.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Categoria   string          `gorm:"index;not null"`
	Origen      string
	Disponible  bool `gorm:"not null;default:true"`
	ImagenURL   string
	Stock       int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default pluralization for Spanish names.
func (Producto) TableName() string { return "productos" }

// BeforeCreate assigns the ID client-side; SQLite has no uuid generator.
func (p *Producto) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
