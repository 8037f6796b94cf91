package model

import "time"

// Cliente is keyed by the customer's document id.
type Cliente struct {
	Documento string    `gorm:"primaryKey;size:40" json:"documento"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Telefono  *string   `gorm:"size:30" json:"telefono"`
	Email     *string   `json:"email"`
	Direccion *string   `json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
