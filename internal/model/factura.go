package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura is keyed by its natural invoice code (e.g. "FAC002").
// Items are scoped to their parent invoice: replaced wholesale on update,
// removed on delete.
type Factura struct {
	Codigo            string          `gorm:"primaryKey;size:40" json:"codigo_factura"`
	Fecha             time.Time       `gorm:"not null" json:"fecha"`
	TipoPago          string          `gorm:"size:30;not null" json:"tipo_pago"`
	Total             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	TransaccionCodigo *string         `gorm:"size:40" json:"codigo_transaccion"`
	ClienteDocumento  *string         `gorm:"size:40;index" json:"documento_cliente"`
	Items             []FacturaItem   `gorm:"foreignKey:FacturaCodigo;constraint:OnDelete:CASCADE" json:"productos_vendidos"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (Factura) TableName() string { return "facturas" }

// FacturaItem is one (product, quantity, unit price) line of an invoice.
type FacturaItem struct {
	ID             uint            `gorm:"primaryKey" json:"-"`
	FacturaCodigo  string          `gorm:"size:40;index;not null" json:"-"`
	ProductoCodigo string          `gorm:"size:40;index;not null" json:"codigo_producto"`
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio_unitario"`
}

func (FacturaItem) TableName() string { return "factura_items" }
