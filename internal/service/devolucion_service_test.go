package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDevolucionService(productos ...*model.Producto) (DevolucionService, *stubProductoRepo, *stubFacturaRepo, *stubDevolucionRepo) {
	productoRepo := newStubProductoRepo(productos...)
	facturaRepo := newStubFacturaRepo()
	devolucionRepo := newStubDevolucionRepo()
	svc := NewDevolucionService(devolucionRepo, facturaRepo, productoRepo)
	return svc, productoRepo, facturaRepo, devolucionRepo
}

func TestCrearDevolucionRestauraUnaUnidad(t *testing.T) {
	svc, productos, facturas, _ := setupDevolucionService(
		productoConStock("PROD001", 98, 50),
	)
	require.NoError(t, facturas.CreateTx(nil, &model.Factura{
		Codigo: "FAC002", Fecha: time.Now(), TipoPago: "efectivo",
	}))

	d, err := svc.Crear(context.Background(), dto.CrearDevolucionRequest{
		CodigoDevolucion: "DEV001",
		Motivo:           "producto defectuoso",
		CodigoFactura:    "FAC002",
		CodigoProducto:   "PROD001",
	})
	require.NoError(t, err)

	assert.Equal(t, 99, productos.stock("PROD001"))
	assert.Equal(t, "FAC002", d.FacturaCodigo)
	assert.Equal(t, "PROD001", d.ProductoCodigo)
}

func TestCrearDevolucionFacturaInexistente(t *testing.T) {
	svc, productos, _, _ := setupDevolucionService(
		productoConStock("PROD001", 98, 50),
	)

	_, err := svc.Crear(context.Background(), dto.CrearDevolucionRequest{
		CodigoDevolucion: "DEV002",
		Motivo:           "producto defectuoso",
		CodigoFactura:    "NOEXISTE",
		CodigoProducto:   "PROD001",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
	assert.Equal(t, 98, productos.stock("PROD001"))
}

func TestCrearDevolucionProductoInexistente(t *testing.T) {
	svc, _, facturas, _ := setupDevolucionService()
	require.NoError(t, facturas.CreateTx(nil, &model.Factura{
		Codigo: "FAC002", Fecha: time.Now(), TipoPago: "efectivo",
	}))

	_, err := svc.Crear(context.Background(), dto.CrearDevolucionRequest{
		CodigoDevolucion: "DEV003",
		Motivo:           "producto defectuoso",
		CodigoFactura:    "FAC002",
		CodigoProducto:   "NOEXISTE",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
}

func TestActualizarDevolucionSoloCamposDescriptivos(t *testing.T) {
	svc, productos, facturas, _ := setupDevolucionService(
		productoConStock("PROD001", 98, 50),
	)
	require.NoError(t, facturas.CreateTx(nil, &model.Factura{
		Codigo: "FAC002", Fecha: time.Now(), TipoPago: "efectivo",
	}))

	_, err := svc.Crear(context.Background(), dto.CrearDevolucionRequest{
		CodigoDevolucion: "DEV004",
		Motivo:           "producto defectuoso",
		CodigoFactura:    "FAC002",
		CodigoProducto:   "PROD001",
	})
	require.NoError(t, err)
	require.Equal(t, 99, productos.stock("PROD001"))

	d, err := svc.Actualizar(context.Background(), "DEV004", dto.ActualizarDevolucionRequest{
		Motivo: "empaque danado",
	})
	require.NoError(t, err)
	assert.Equal(t, "empaque danado", d.Motivo)

	// Editing the record never moves stock again.
	assert.Equal(t, 99, productos.stock("PROD001"))
}

func TestEliminarDevolucionNoRevierteStock(t *testing.T) {
	svc, productos, facturas, devoluciones := setupDevolucionService(
		productoConStock("PROD001", 98, 50),
	)
	require.NoError(t, facturas.CreateTx(nil, &model.Factura{
		Codigo: "FAC002", Fecha: time.Now(), TipoPago: "efectivo",
	}))

	_, err := svc.Crear(context.Background(), dto.CrearDevolucionRequest{
		CodigoDevolucion: "DEV005",
		Motivo:           "producto defectuoso",
		CodigoFactura:    "FAC002",
		CodigoProducto:   "PROD001",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), "DEV005"))

	_, err = devoluciones.FindByCodigo(context.Background(), "DEV005")
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
	assert.Equal(t, 99, productos.stock("PROD001"))
}
