package dto

// Create/update requests for the plain catalog entities. Updates treat empty
// strings as "unchanged" and pointers as explicit sets.

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarCategoriaRequest struct {
	Descripcion *string `json:"descripcion"`
}

type CrearUbicacionRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarUbicacionRequest struct {
	Descripcion *string `json:"descripcion"`
}

type CrearClienteRequest struct {
	Documento string  `json:"documento" validate:"required"`
	Nombre    string  `json:"nombre"    validate:"required"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ActualizarClienteRequest struct {
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type CrearProveedorRequest struct {
	Nit       string  `json:"nit"    validate:"required"`
	Nombre    string  `json:"nombre" validate:"required"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"  validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ActualizarProveedorRequest struct {
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}
