package model

import "github.com/shopspring/decimal"

// ItemCarrito is one ephemeral cart line. It is never persisted; at checkout
// it is converted into a DetallePedido.
type ItemCarrito struct {
	Producto Producto
	Cantidad int
}

// Subtotal is precio × cantidad, derived on every call.
func (i ItemCarrito) Subtotal() decimal.Decimal {
	return i.Producto.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}
