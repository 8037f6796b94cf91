package model

import "time"

// Devolucion records the return of one unit of a product sold on an invoice.
// Creation restores exactly one unit of stock; the record carries no quantity
// field.
type Devolucion struct {
	Codigo         string    `gorm:"primaryKey;size:40" json:"codigo_devolucion"`
	Fecha          time.Time `gorm:"not null" json:"fecha"`
	Motivo         string    `gorm:"not null" json:"motivo"`
	FacturaCodigo  string    `gorm:"size:40;index;not null" json:"codigo_factura"`
	ProductoCodigo string    `gorm:"size:40;index;not null" json:"codigo_producto"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Devolucion) TableName() string { return "devoluciones" }
