package model

import "time"

// Categoria groups products; keyed by its name.
type Categoria struct {
	Nombre      string    `gorm:"primaryKey;size:80" json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Categoria) TableName() string { return "categorias" }

// Ubicacion is a physical storage location; keyed by its name.
type Ubicacion struct {
	Nombre      string    `gorm:"primaryKey;size:80" json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Ubicacion) TableName() string { return "ubicaciones" }
