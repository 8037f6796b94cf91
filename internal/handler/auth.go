package handler

import (
	"net/http"

	"biocristal/internal/dto"
	"biocristal/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Iniciar sesion
// @Tags usuarios
// @Accept json
// @Produce json
// @Param credenciales body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /usuarios/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword always answers with the same generic message so callers
// cannot probe which emails are registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{
		Mensaje: "Si el correo existe, se envio un enlace de restablecimiento",
	})
}

// ResetPassword godoc
// @Summary Restablecer contrasena con token
// @Tags usuarios
// @Accept json
// @Produce json
// @Param token path string true "Token de restablecimiento"
// @Param body body dto.ResetPasswordRequest true "Nueva contrasena"
// @Success 200 {object} dto.Mensaje
// @Failure 400 {object} apierror.APIError "Token invalido o expirado"
// @Router /usuarios/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Contrasena actualizada"})
}

// ─── Gestion de usuarios (solo Administrador) ────────────────────────────────

func (h *AuthHandler) CrearUsuario(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) ObtenerUsuario(c *gin.Context) {
	u, err := h.svc.ObtenerUsuario(c.Request.Context(), c.Param("documento"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	usuarios, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *AuthHandler) ActualizarUsuario(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.ActualizarUsuario(c.Request.Context(), c.Param("documento"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) EliminarUsuario(c *gin.Context) {
	if err := h.svc.EliminarUsuario(c.Request.Context(), c.Param("documento")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Usuario eliminado"})
}
