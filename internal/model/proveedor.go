package model

import "time"

// Proveedor is keyed by the supplier's tax id (NIT).
type Proveedor struct {
	Nit       string    `gorm:"primaryKey;size:40" json:"nit"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Telefono  *string   `gorm:"size:30" json:"telefono"`
	Email     *string   `json:"email"`
	Direccion *string   `json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Proveedor) TableName() string { return "proveedores" }
