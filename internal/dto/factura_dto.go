package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// ItemFacturaRequest is one line of productos_vendidos.
// PrecioUnitario is optional: when zero the product's current sale price is
// used.
type ItemFacturaRequest struct {
	CodigoProducto string          `json:"codigo_producto" validate:"required"`
	Cantidad       int             `json:"cantidad"        validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

type CrearFacturaRequest struct {
	CodigoFactura     string               `json:"codigo_factura" validate:"required"`
	Fecha             string               `json:"fecha"          validate:"omitempty,datetime=2006-01-02"`
	TipoPago          string               `json:"tipo_pago"      validate:"required"`
	DocumentoCliente  *string              `json:"documento_cliente"`
	ProductosVendidos []ItemFacturaRequest `json:"productos_vendidos" validate:"required,min=1,dive"`
}

// ActualizarFacturaRequest replaces the invoice's line items wholesale.
type ActualizarFacturaRequest struct {
	Fecha             string               `json:"fecha"     validate:"omitempty,datetime=2006-01-02"`
	TipoPago          string               `json:"tipo_pago"`
	DocumentoCliente  *string              `json:"documento_cliente"`
	ProductosVendidos []ItemFacturaRequest `json:"productos_vendidos" validate:"required,min=1,dive"`
}

// FacturaFilter is bound from the query string of GET /facturas.
type FacturaFilter struct {
	Fecha   string `form:"fecha"   validate:"omitempty,datetime=2006-01-02"`
	Cliente string `form:"cliente"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}
