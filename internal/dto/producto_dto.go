package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Codigo       string          `json:"codigo"         validate:"required"`
	Nombre       string          `json:"nombre"         validate:"required"`
	UnidadMedida string          `json:"unidad_medida"`
	PrecioCompra decimal.Decimal `json:"precio_compra"  validate:"min=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"   validate:"min=0"`
	Stock        int             `json:"stock"          validate:"min=0"`
	Ubicacion    *string         `json:"ubicacion"`
	ProveedorNit *string         `json:"proveedor_nit"`
	Categoria    *string         `json:"categoria"`
	Imagen       *string         `json:"imagen"`
}

// ActualizarProductoRequest: empty / nil fields are left unchanged.
// Stock is deliberately absent — stock moves only through invoices, returns
// and the explicit stock adjustment endpoint.
type ActualizarProductoRequest struct {
	Nombre       string           `json:"nombre"`
	UnidadMedida string           `json:"unidad_medida"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
	Ubicacion    *string          `json:"ubicacion"`
	ProveedorNit *string          `json:"proveedor_nit"`
	Categoria    *string          `json:"categoria"`
	Imagen       *string          `json:"imagen"`
}

// AjustarStockRequest applies a signed stock delta (manual correction).
type AjustarStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=3"`
}

// ProductoFilter is bound from the query string of GET /productos.
type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"`
	Ubicacion string `form:"ubicacion"`
	Proveedor string `form:"proveedor"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}
