package service

import (
	"sync"

	"huertohogar/internal/model"
)

// Sesion is the single logical actor of the system: the current account plus
// its cart. The cart lives and dies with the session; closing it clears
// both, which is the observed abandonment behavior.
type Sesion struct {
	mu      sync.Mutex
	usuario *model.Usuario
	carrito *Carrito
}

func NewSesion() *Sesion {
	return &Sesion{carrito: NewCarrito()}
}

func (s *Sesion) Iniciar(u *model.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuario = u
}

// Actual returns the logged-in account, or nil when nobody is logged in.
func (s *Sesion) Actual() *model.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usuario
}

func (s *Sesion) Carrito() *Carrito {
	return s.carrito
}

// Cerrar logs out and empties the cart.
func (s *Sesion) Cerrar() {
	s.mu.Lock()
	s.usuario = nil
	s.mu.Unlock()
	s.carrito.Vaciar()
}
