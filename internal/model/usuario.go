package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario is a registered account. Email uniqueness is case-sensitive.
//
// Password is stored in plain text. This reproduces the source system's
// behavior and is a known weakness: login compares the submitted value
// against the stored value with plain equality.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre    string    `gorm:"not null"`
	Apellido  string
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Telefono  string
	Direccion string
	Ciudad    string
	Region    string
	EsAdmin   bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
