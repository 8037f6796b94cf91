package handler

import (
	"net/http"

	"biocristal/internal/dto"
	"biocristal/internal/service"

	"github.com/gin-gonic/gin"
)

type DevolucionHandler struct {
	svc service.DevolucionService
}

func NewDevolucionHandler(svc service.DevolucionService) *DevolucionHandler {
	return &DevolucionHandler{svc: svc}
}

// Crear registers a return against an existing invoice and restores one unit
// of the product's stock.
func (h *DevolucionHandler) Crear(c *gin.Context) {
	var req dto.CrearDevolucionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DevolucionHandler) Obtener(c *gin.Context) {
	d, err := h.svc.Obtener(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DevolucionHandler) Listar(c *gin.Context) {
	devoluciones, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, devoluciones)
}

func (h *DevolucionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarDevolucionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Actualizar(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DevolucionHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Devolucion eliminada"})
}
