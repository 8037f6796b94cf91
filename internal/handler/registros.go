package handler

import (
	"net/http"
	"time"

	"biocristal/internal/dto"
	"biocristal/internal/model"
	"biocristal/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handlers for the operational record entities: money transactions, imports,
// exports and maintenance logs. Plain CRUD over their repositories.

// fechaODefecto parses YYYY-MM-DD; empty or malformed input means today.
func fechaODefecto(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Now()
	}
	return t
}

// ─── Transacciones ───────────────────────────────────────────────────────────

type TransaccionHandler struct {
	repo repository.TransaccionRepository
}

func NewTransaccionHandler(repo repository.TransaccionRepository) *TransaccionHandler {
	return &TransaccionHandler{repo: repo}
}

func (h *TransaccionHandler) Crear(c *gin.Context) {
	var req dto.CrearTransaccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t := model.Transaccion{
		Codigo:      req.Codigo,
		Fecha:       fechaODefecto(req.Fecha),
		Tipo:        req.Tipo,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
	}
	if err := h.repo.Create(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TransaccionHandler) Obtener(c *gin.Context) {
	t, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TransaccionHandler) Listar(c *gin.Context) {
	transacciones, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transacciones)
}

func (h *TransaccionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarTransaccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Fecha != "" {
		t.Fecha = fechaODefecto(req.Fecha)
	}
	if req.Tipo != "" {
		t.Tipo = req.Tipo
	}
	if req.Monto != nil {
		t.Monto = *req.Monto
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
	}
	if err := h.repo.Update(c.Request.Context(), t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TransaccionHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Transaccion eliminada"})
}

// ─── Importaciones ───────────────────────────────────────────────────────────

type ImportacionHandler struct {
	repo repository.ImportacionRepository
}

func NewImportacionHandler(repo repository.ImportacionRepository) *ImportacionHandler {
	return &ImportacionHandler{repo: repo}
}

func (h *ImportacionHandler) Crear(c *gin.Context) {
	var req dto.CrearImportacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	i := model.Importacion{
		Codigo:       req.Codigo,
		Fecha:        fechaODefecto(req.Fecha),
		ProveedorNit: req.ProveedorNit,
		Descripcion:  req.Descripcion,
		Monto:        req.Monto,
	}
	if err := h.repo.Create(c.Request.Context(), &i); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, i)
}

func (h *ImportacionHandler) Obtener(c *gin.Context) {
	i, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

func (h *ImportacionHandler) Listar(c *gin.Context) {
	importaciones, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, importaciones)
}

func (h *ImportacionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarImportacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	i, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Fecha != "" {
		i.Fecha = fechaODefecto(req.Fecha)
	}
	if req.ProveedorNit != nil {
		i.ProveedorNit = req.ProveedorNit
	}
	if req.Descripcion != nil {
		i.Descripcion = req.Descripcion
	}
	if req.Monto != nil {
		i.Monto = *req.Monto
	}
	if err := h.repo.Update(c.Request.Context(), i); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

func (h *ImportacionHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Importacion eliminada"})
}

// ─── Exportaciones ───────────────────────────────────────────────────────────

type ExportacionHandler struct {
	repo repository.ExportacionRepository
}

func NewExportacionHandler(repo repository.ExportacionRepository) *ExportacionHandler {
	return &ExportacionHandler{repo: repo}
}

func (h *ExportacionHandler) Crear(c *gin.Context) {
	var req dto.CrearExportacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e := model.Exportacion{
		Codigo:           req.Codigo,
		Fecha:            fechaODefecto(req.Fecha),
		ClienteDocumento: req.ClienteDocumento,
		Descripcion:      req.Descripcion,
		Monto:            req.Monto,
	}
	if err := h.repo.Create(c.Request.Context(), &e); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExportacionHandler) Obtener(c *gin.Context) {
	e, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExportacionHandler) Listar(c *gin.Context) {
	exportaciones, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exportaciones)
}

func (h *ExportacionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarExportacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Fecha != "" {
		e.Fecha = fechaODefecto(req.Fecha)
	}
	if req.ClienteDocumento != nil {
		e.ClienteDocumento = req.ClienteDocumento
	}
	if req.Descripcion != nil {
		e.Descripcion = req.Descripcion
	}
	if req.Monto != nil {
		e.Monto = *req.Monto
	}
	if err := h.repo.Update(c.Request.Context(), e); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExportacionHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Exportacion eliminada"})
}

// ─── Mantenimientos ──────────────────────────────────────────────────────────

type MantenimientoHandler struct {
	repo repository.MantenimientoRepository
}

func NewMantenimientoHandler(repo repository.MantenimientoRepository) *MantenimientoHandler {
	return &MantenimientoHandler{repo: repo}
}

func (h *MantenimientoHandler) Crear(c *gin.Context) {
	var req dto.CrearMantenimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m := model.Mantenimiento{
		Codigo:      req.Codigo,
		Fecha:       fechaODefecto(req.Fecha),
		Equipo:      req.Equipo,
		Descripcion: req.Descripcion,
		Costo:       req.Costo,
	}
	if err := h.repo.Create(c.Request.Context(), &m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MantenimientoHandler) Obtener(c *gin.Context) {
	m, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MantenimientoHandler) Listar(c *gin.Context) {
	mantenimientos, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mantenimientos)
}

func (h *MantenimientoHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarMantenimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.repo.FindByCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Fecha != "" {
		m.Fecha = fechaODefecto(req.Fecha)
	}
	if req.Equipo != "" {
		m.Equipo = req.Equipo
	}
	if req.Descripcion != nil {
		m.Descripcion = req.Descripcion
	}
	if req.Costo != nil {
		m.Costo = *req.Costo
	}
	if err := h.repo.Update(c.Request.Context(), m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MantenimientoHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Mantenimiento eliminado"})
}
