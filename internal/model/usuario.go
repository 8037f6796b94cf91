package model

import "time"

// Usuario stores system users with role-based access.
// Rol: "Administrador" | "Empleado"
//
// ResetToken / ResetTokenCreado are written only by the password-reset flow:
// set on forgot-password, cleared atomically when the token is consumed.
// Expired tokens are never swept; they simply fail the timestamp comparison
// on the next lookup.
type Usuario struct {
	Documento        string     `gorm:"primaryKey;size:40" json:"documento"`
	Nombre           string     `gorm:"not null" json:"nombre"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Rol              string     `gorm:"type:varchar(20);not null" json:"rol"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	ResetToken       *string    `gorm:"index" json:"-"`
	ResetTokenCreado *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }
