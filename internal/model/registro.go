package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Importacion records an inbound goods shipment from a supplier.
type Importacion struct {
	Codigo       string          `gorm:"primaryKey;size:40" json:"codigo"`
	Fecha        time.Time       `gorm:"not null" json:"fecha"`
	ProveedorNit *string         `gorm:"size:40;index" json:"nit_proveedor"`
	Descripcion  *string         `json:"descripcion"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Importacion) TableName() string { return "importaciones" }

// Exportacion records an outbound goods shipment to a customer.
type Exportacion struct {
	Codigo           string          `gorm:"primaryKey;size:40" json:"codigo"`
	Fecha            time.Time       `gorm:"not null" json:"fecha"`
	ClienteDocumento *string         `gorm:"size:40;index" json:"documento_cliente"`
	Descripcion      *string         `json:"descripcion"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (Exportacion) TableName() string { return "exportaciones" }

// Mantenimiento records equipment maintenance work and its cost.
type Mantenimiento struct {
	Codigo      string          `gorm:"primaryKey;size:40" json:"codigo"`
	Fecha       time.Time       `gorm:"not null" json:"fecha"`
	Equipo      string          `gorm:"not null" json:"equipo"`
	Descripcion *string         `json:"descripcion"`
	Costo       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"costo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Mantenimiento) TableName() string { return "mantenimientos" }
