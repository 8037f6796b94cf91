package service

import (
	"context"
	"errors"
	"testing"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProductoUnidadPorDefecto(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo(), nil)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo:      "PROD001",
		Nombre:      "Vaso cristal 12oz",
		PrecioVenta: decimal.NewFromInt(50),
		Stock:       100,
	})
	require.NoError(t, err)
	assert.Equal(t, "unidad", p.UnidadMedida)
	assert.Equal(t, 100, p.Stock)
}

func TestCrearProductoDuplicado(t *testing.T) {
	repo := newStubProductoRepo(productoConStock("PROD001", 10, 50))
	svc := NewProductoService(repo, nil)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: "PROD001", Nombre: "Otro",
	})
	assert.True(t, errors.Is(err, apierror.ErrYaExiste))
}

func TestActualizarProductoNoTocaStock(t *testing.T) {
	repo := newStubProductoRepo(productoConStock("PROD001", 42, 50))
	svc := NewProductoService(repo, nil)

	nuevoPrecio := decimal.NewFromInt(60)
	p, err := svc.Actualizar(context.Background(), "PROD001", dto.ActualizarProductoRequest{
		PrecioVenta: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.True(t, p.PrecioVenta.Equal(nuevoPrecio))
	assert.Equal(t, 42, p.Stock)
}

func TestAjustarStock(t *testing.T) {
	repo := newStubProductoRepo(productoConStock("PROD001", 10, 50))
	svc := NewProductoService(repo, nil)

	p, err := svc.AjustarStock(context.Background(), "PROD001", dto.AjustarStockRequest{
		Delta: -4, Motivo: "merma por rotura",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stock)

	// A delta below zero available units is rejected in full.
	_, err = svc.AjustarStock(context.Background(), "PROD001", dto.AjustarStockRequest{
		Delta: -10, Motivo: "conteo fisico",
	})
	assert.True(t, errors.Is(err, apierror.ErrStockInsuficiente))
	assert.Equal(t, 6, repo.stock("PROD001"))
}

func TestAjustarStockProductoInexistente(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo(), nil)

	_, err := svc.AjustarStock(context.Background(), "NOEXISTE", dto.AjustarStockRequest{
		Delta: 1, Motivo: "reposicion",
	})
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
}
