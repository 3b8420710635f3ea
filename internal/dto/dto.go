package dto

import (
	"huertohogar/internal/model"

	"github.com/google/uuid"
)

// ProductoFilter narrows catalog listings.
type ProductoFilter struct {
	// Texto matches nombre or descripcion, case-insensitive substring.
	Texto string
	// Categoria is an exact match; empty or model.CategoriaTodos means no filter.
	Categoria string
}

// RegistroRequest carries registration input. Struct field order matters:
// validation short-circuits on the first violated rule, top to bottom
// (nombre → email presence → email shape → password length → telefono).
type RegistroRequest struct {
	Nombre    string `validate:"required"`
	Apellido  string
	Email     string `validate:"required,contains=@"`
	Password  string `validate:"min=6"`
	Telefono  string `validate:"required"`
	Direccion string
	Ciudad    string
	Region    string
	EsAdmin   bool
}

// ActualizarPerfilRequest updates profile fields only, never email or password.
type ActualizarPerfilRequest struct {
	Nombre    string
	Apellido  string
	Telefono  string
	Direccion string
	Ciudad    string
	Region    string
}

// CrearPedidoRequest is the checkout input: the cart lines plus delivery data.
type CrearPedidoRequest struct {
	UsuarioID        uuid.UUID
	Items            []model.ItemCarrito
	DireccionEntrega string
	MetodoPago       string
}
