package service

import (
	"sync"

	"huertohogar/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Carrito is the in-memory cart for one active session. It is never
// persisted: logout or an explicit Vaciar resets it. Total is always derived
// from the lines, never stored, so it cannot drift from their sum.
type Carrito struct {
	mu    sync.Mutex
	items []model.ItemCarrito
}

func NewCarrito() *Carrito { return &Carrito{} }

// Agregar merges cantidad into an existing line for the same product, or
// appends a new line. Cantidad below 1 is treated as 1.
func (c *Carrito) Agregar(p model.Producto, cantidad int) {
	if cantidad < 1 {
		cantidad = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Producto.ID == p.ID {
			c.items[i].Cantidad += cantidad
			return
		}
	}
	c.items = append(c.items, model.ItemCarrito{Producto: p, Cantidad: cantidad})
}

// FijarCantidad overwrites a line's quantity; zero or less removes the line.
func (c *Carrito) FijarCantidad(productoID uuid.UUID, cantidad int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Producto.ID == productoID {
			if cantidad <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Cantidad = cantidad
			}
			return
		}
	}
}

func (c *Carrito) Quitar(productoID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Producto.ID == productoID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Carrito) Vaciar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current lines.
func (c *Carrito) Items() []model.ItemCarrito {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.ItemCarrito, len(c.items))
	copy(out, c.items)
	return out
}

// Total recomputes the sum of line subtotals on every call.
func (c *Carrito) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
