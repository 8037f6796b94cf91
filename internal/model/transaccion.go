package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaccion is the money-movement ledger. Rows are created directly through
// its CRUD routes and as side records of invoice lifecycle operations
// (tipo "venta" | "ajuste" | "anulacion").
type Transaccion struct {
	Codigo      string          `gorm:"primaryKey;size:40" json:"codigo"`
	Fecha       time.Time       `gorm:"not null" json:"fecha"`
	Tipo        string          `gorm:"size:30;not null" json:"tipo"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	Descripcion *string         `json:"descripcion"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (Transaccion) TableName() string { return "transacciones" }
