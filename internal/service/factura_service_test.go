package service

import (
	"context"
	"errors"
	"testing"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productoConStock(codigo string, stock int, precioVenta int64) *model.Producto {
	return &model.Producto{
		Codigo:      codigo,
		Nombre:      "Producto " + codigo,
		PrecioVenta: decimal.NewFromInt(precioVenta),
		Stock:       stock,
	}
}

func setupFacturaService(productos ...*model.Producto) (FacturaService, *stubProductoRepo, *stubFacturaRepo, *stubTransaccionRepo) {
	productoRepo := newStubProductoRepo(productos...)
	facturaRepo := newStubFacturaRepo()
	transaccionRepo := newStubTransaccionRepo()
	svc := NewFacturaService(facturaRepo, productoRepo, transaccionRepo)
	return svc, productoRepo, facturaRepo, transaccionRepo
}

func TestCrearFacturaDescuentaStock(t *testing.T) {
	svc, productos, facturas, transacciones := setupFacturaService(
		productoConStock("PROD001", 100, 50),
	)

	f, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC002",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 98, productos.stock("PROD001"))
	assert.True(t, f.Total.Equal(decimal.NewFromInt(100)), "total = %s", f.Total)

	guardada, err := facturas.FindByCodigo(context.Background(), "FAC002")
	require.NoError(t, err)
	require.Len(t, guardada.Items, 1)
	assert.Equal(t, "PROD001", guardada.Items[0].ProductoCodigo)

	trx := transacciones.ultima()
	require.NotNil(t, trx)
	assert.Equal(t, "venta", trx.Tipo)
	assert.True(t, trx.Monto.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, f.TransaccionCodigo)
	assert.Equal(t, trx.Codigo, *f.TransaccionCodigo)
}

func TestCrearFacturaUsaPrecioDeVentaPorDefecto(t *testing.T) {
	svc, _, _, _ := setupFacturaService(productoConStock("PROD001", 10, 75))

	f, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC010",
		TipoPago:      "tarjeta",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 3},
		},
	})
	require.NoError(t, err)
	assert.True(t, f.Total.Equal(decimal.NewFromInt(225)))
	assert.True(t, f.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(75)))
}

func TestCrearFacturaStockInsuficiente(t *testing.T) {
	svc, productos, _, _ := setupFacturaService(
		productoConStock("PROD001", 1, 50),
	)

	_, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC003",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 5},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrStockInsuficiente))

	// The conditional decrement rejected the line without touching stock.
	assert.Equal(t, 1, productos.stock("PROD001"))
}

func TestCrearFacturaProductoInexistente(t *testing.T) {
	svc, _, _, _ := setupFacturaService()

	_, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC004",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "NOEXISTE", Cantidad: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))
	assert.Contains(t, err.Error(), "NOEXISTE")
}

func TestActualizarFacturaAplicaDeltaDeCantidad(t *testing.T) {
	svc, productos, _, transacciones := setupFacturaService(
		productoConStock("PROD001", 100, 50),
	)

	_, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC005",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 98, productos.stock("PROD001"))

	// 2 → 3 of the same product: only one extra unit leaves stock.
	f, err := svc.Actualizar(context.Background(), "FAC005", dto.ActualizarFacturaRequest{
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 97, productos.stock("PROD001"))
	assert.True(t, f.Total.Equal(decimal.NewFromInt(150)))

	trx := transacciones.ultima()
	require.NotNil(t, trx)
	assert.Equal(t, "ajuste", trx.Tipo)
	assert.True(t, trx.Monto.Equal(decimal.NewFromInt(50)), "monto = %s", trx.Monto)
}

func TestActualizarFacturaCambiaDeProducto(t *testing.T) {
	svc, productos, _, _ := setupFacturaService(
		productoConStock("PROD001", 100, 50),
		productoConStock("PROD002", 20, 30),
	)

	_, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC006",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 2},
		},
	})
	require.NoError(t, err)

	// Swap the line to another product: old units come back, new ones leave.
	_, err = svc.Actualizar(context.Background(), "FAC006", dto.ActualizarFacturaRequest{
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD002", Cantidad: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, productos.stock("PROD001"))
	assert.Equal(t, 19, productos.stock("PROD002"))
}

func TestActualizarFacturaStockInsuficienteNoCambiaItems(t *testing.T) {
	svc, productos, facturas, _ := setupFacturaService(
		productoConStock("PROD001", 5, 50),
	)

	_, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC007",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 2},
		},
	})
	require.NoError(t, err)

	_, err = svc.Actualizar(context.Background(), "FAC007", dto.ActualizarFacturaRequest{
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 50},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrStockInsuficiente))

	guardada, err := facturas.FindByCodigo(context.Background(), "FAC007")
	require.NoError(t, err)
	require.Len(t, guardada.Items, 1)
	assert.Equal(t, 2, guardada.Items[0].Cantidad)
	assert.Equal(t, 3, productos.stock("PROD001"))
}

func TestEliminarFacturaRestauraStock(t *testing.T) {
	svc, productos, facturas, transacciones := setupFacturaService(
		productoConStock("PROD001", 100, 50),
	)

	_, err := svc.Crear(context.Background(), dto.CrearFacturaRequest{
		CodigoFactura: "FAC008",
		TipoPago:      "efectivo",
		ProductosVendidos: []dto.ItemFacturaRequest{
			{CodigoProducto: "PROD001", Cantidad: 4},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 96, productos.stock("PROD001"))

	require.NoError(t, svc.Eliminar(context.Background(), "FAC008"))

	assert.Equal(t, 100, productos.stock("PROD001"))
	_, err = facturas.FindByCodigo(context.Background(), "FAC008")
	assert.True(t, errors.Is(err, apierror.ErrNoEncontrado))

	trx := transacciones.ultima()
	require.NotNil(t, trx)
	assert.Equal(t, "anulacion", trx.Tipo)
	assert.True(t, trx.Monto.Equal(decimal.NewFromInt(-200)), "monto = %s", trx.Monto)
}
