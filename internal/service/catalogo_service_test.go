package service_test

import (
	"context"
	"testing"

	"huertohogar/internal/model"
	"huertohogar/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogoCrearDevuelveID(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewCatalogoService(repo)

	p := &model.Producto{Nombre: "Papas Nativas", Precio: decimal.NewFromInt(2000), Categoria: "Verduras"}
	id, err := svc.Crear(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)

	leido, err := svc.ObtenerPorID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, "Papas Nativas", leido.Nombre)
}

func TestCatalogoDescontarStockEsIncondicional(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewCatalogoService(repo)
	ctx := context.Background()

	p := productoDePrueba(1000, 3)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, svc.DescontarStock(ctx, p.ID, 5))
	assert.Equal(t, -2, repo.productos[p.ID].Stock)
}

func TestCatalogoDisponiblesExcluyeSinStock(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewCatalogoService(repo)
	ctx := context.Background()

	conStock := productoDePrueba(1000, 5)
	require.NoError(t, repo.Create(ctx, conStock))

	agotado := productoDePrueba(1000, 0)
	agotado.Nombre = "Fresas Premium"
	require.NoError(t, repo.Create(ctx, agotado))

	oculto := productoDePrueba(1000, 9)
	oculto.Nombre = "Papas Nativas"
	oculto.Disponible = false
	require.NoError(t, repo.Create(ctx, oculto))

	disponibles, err := svc.Disponibles(ctx)
	require.NoError(t, err)
	require.Len(t, disponibles, 1)
	assert.Equal(t, conStock.Nombre, disponibles[0].Nombre)
}

func TestCatalogoEliminar(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewCatalogoService(repo)
	ctx := context.Background()

	p := productoDePrueba(1000, 5)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, svc.Eliminar(ctx, p.ID))

	leido, err := svc.ObtenerPorID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, leido)
}
