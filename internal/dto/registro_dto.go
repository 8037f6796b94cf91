package dto

import "github.com/shopspring/decimal"

type CrearTransaccionRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Fecha       string          `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	Tipo        string          `json:"tipo"   validate:"required"`
	Monto       decimal.Decimal `json:"monto"  validate:"required"`
	Descripcion *string         `json:"descripcion"`
}

type ActualizarTransaccionRequest struct {
	Fecha       string           `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Tipo        string           `json:"tipo"`
	Monto       *decimal.Decimal `json:"monto"`
	Descripcion *string          `json:"descripcion"`
}

type CrearImportacionRequest struct {
	Codigo       string          `json:"codigo" validate:"required"`
	Fecha        string          `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	ProveedorNit *string         `json:"nit_proveedor"`
	Descripcion  *string         `json:"descripcion"`
	Monto        decimal.Decimal `json:"monto" validate:"min=0"`
}

type ActualizarImportacionRequest struct {
	Fecha        string           `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	ProveedorNit *string          `json:"nit_proveedor"`
	Descripcion  *string          `json:"descripcion"`
	Monto        *decimal.Decimal `json:"monto"`
}

type CrearExportacionRequest struct {
	Codigo           string          `json:"codigo" validate:"required"`
	Fecha            string          `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	ClienteDocumento *string         `json:"documento_cliente"`
	Descripcion      *string         `json:"descripcion"`
	Monto            decimal.Decimal `json:"monto" validate:"min=0"`
}

type ActualizarExportacionRequest struct {
	Fecha            string           `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	ClienteDocumento *string          `json:"documento_cliente"`
	Descripcion      *string          `json:"descripcion"`
	Monto            *decimal.Decimal `json:"monto"`
}

type CrearMantenimientoRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Fecha       string          `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	Equipo      string          `json:"equipo" validate:"required"`
	Descripcion *string         `json:"descripcion"`
	Costo       decimal.Decimal `json:"costo"  validate:"min=0"`
}

type ActualizarMantenimientoRequest struct {
	Fecha       string           `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Equipo      string           `json:"equipo"`
	Descripcion *string          `json:"descripcion"`
	Costo       *decimal.Decimal `json:"costo"`
}
