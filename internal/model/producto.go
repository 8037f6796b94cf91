package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is keyed by its natural product code (e.g. "PROD001").
// Stock is mutated by its own CRUD routes and, transactionally, by the
// factura/devolucion services. The invariant stock >= 0 is enforced with a
// conditional UPDATE, never by application-side checks alone.
type Producto struct {
	Codigo       string          `gorm:"primaryKey;size:40" json:"codigo"`
	Nombre       string          `gorm:"index;not null" json:"nombre"`
	UnidadMedida string          `gorm:"not null;default:'unidad'" json:"unidad_medida"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio_compra"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio_venta"`
	Stock        int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Ubicacion    *string         `gorm:"size:80;index" json:"ubicacion"`
	ProveedorNit *string         `gorm:"size:40;index" json:"proveedor_nit"`
	Categoria    *string         `gorm:"size:80;index" json:"categoria"`
	Imagen       *string         `json:"imagen"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Producto) TableName() string { return "productos" }
