package handler

import (
	"net/http"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductoHandler struct {
	svc service.ProductoService
}

func NewProductoHandler(svc service.ProductoService) *ProductoHandler {
	return &ProductoHandler{svc: svc}
}

// Crear godoc
// @Summary Crear producto
// @Tags productos
// @Accept json
// @Produce json
// @Param producto body dto.CrearProductoRequest true "Producto"
// @Success 201 {object} model.Producto
// @Failure 409 {object} apierror.APIError
// @Router /productos [post]
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Obtener godoc
// @Summary Obtener producto por codigo
// @Tags productos
// @Produce json
// @Param codigo path string true "Codigo del producto"
// @Success 200 {object} model.Producto
// @Failure 404 {object} apierror.APIError
// @Router /productos/{codigo} [get]
func (h *ProductoHandler) Obtener(c *gin.Context) {
	p, err := h.svc.Obtener(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Listar godoc
// @Summary Listar productos
// @Tags productos
// @Produce json
// @Param nombre query string false "Filtro por nombre (parcial)"
// @Param categoria query string false "Filtro por categoria"
// @Param page query int false "Pagina"
// @Param limit query int false "Tamano de pagina"
// @Success 200 {object} map[string]interface{}
// @Router /productos [get]
func (h *ProductoHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametros invalidos: "+err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametros fuera de rango"))
		return
	}
	productos, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  productos,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

func (h *ProductoHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductoHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Producto eliminado"})
}

// AjustarStock applies a signed manual stock correction. A delta that would
// leave stock negative is rejected without changing anything.
func (h *ProductoHandler) AjustarStock(c *gin.Context) {
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.AjustarStock(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
