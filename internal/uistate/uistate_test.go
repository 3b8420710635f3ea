package uistate_test

import (
	"testing"

	"huertohogar/internal/uistate"

	"github.com/stretchr/testify/assert"
)

func visitado(s uistate.State[int]) string {
	var donde string
	s.Match(
		func() { donde = "idle" },
		func() { donde = "loading" },
		func(int) { donde = "success" },
		func(string) { donde = "error" },
	)
	return donde
}

func TestMatchCubreLasCuatroVariantes(t *testing.T) {
	assert.Equal(t, "idle", visitado(uistate.Idle[int]()))
	assert.Equal(t, "loading", visitado(uistate.Loading[int]()))
	assert.Equal(t, "success", visitado(uistate.Success(42)))
	assert.Equal(t, "error", visitado(uistate.Error[int]("falló")))
}

func TestZeroValueEsIdle(t *testing.T) {
	var s uistate.State[string]
	assert.Equal(t, uistate.KindIdle, s.Kind())
}

func TestSuccessConservaElValor(t *testing.T) {
	s := uistate.Success(42)
	assert.Equal(t, uistate.KindSuccess, s.Kind())
	assert.Equal(t, 42, s.Value())
}

func TestErrorConservaElMensaje(t *testing.T) {
	s := uistate.Error[int]("sin stock")
	assert.Equal(t, uistate.KindError, s.Kind())
	assert.Equal(t, "sin stock", s.Mensaje())
}
