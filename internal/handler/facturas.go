package handler

import (
	"fmt"
	"net/http"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/infra"
	"biocristal/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturaHandler struct {
	svc service.FacturaService
}

func NewFacturaHandler(svc service.FacturaService) *FacturaHandler {
	return &FacturaHandler{svc: svc}
}

// Crear godoc
// @Summary Crear factura
// @Description Registra la factura, descuenta stock de cada linea y crea la transaccion de venta en una sola operacion atomica.
// @Tags facturas
// @Accept json
// @Produce json
// @Param factura body dto.CrearFacturaRequest true "Factura"
// @Success 201 {object} model.Factura
// @Failure 400 {object} apierror.APIError "Stock insuficiente"
// @Failure 404 {object} apierror.APIError "Producto no existe"
// @Router /facturas [post]
func (h *FacturaHandler) Crear(c *gin.Context) {
	var req dto.CrearFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FacturaHandler) Obtener(c *gin.Context) {
	f, err := h.svc.Obtener(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FacturaHandler) Listar(c *gin.Context) {
	var filter dto.FacturaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametros invalidos: "+err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametros fuera de rango"))
		return
	}
	facturas, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  facturas,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

func (h *FacturaHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	f, err := h.svc.Actualizar(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FacturaHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Factura anulada"})
}

// DescargarPDF streams the invoice as a printable PDF document.
func (h *FacturaHandler) DescargarPDF(c *gin.Context) {
	f, err := h.svc.Obtener(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	pdfBytes, err := infra.RenderFacturaPDF(f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, f.Codigo))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
