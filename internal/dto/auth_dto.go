package dto

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ForgotPasswordRequest starts the reset-token flow. The response is the same
// generic message whether or not the email exists.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// Mensaje is the generic success body for flows that must not leak state.
type Mensaje struct {
	Mensaje string `json:"mensaje"`
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Documento string `json:"documento" validate:"required"`
	Nombre    string `json:"nombre"    validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	Rol       string `json:"rol"       validate:"required,oneof=Administrador Empleado"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=Administrador Empleado"`
}

type UsuarioResponse struct {
	Documento string `json:"documento"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
}
