package handler

import (
	"net/http"

	"biocristal/internal/dto"
	"biocristal/internal/model"
	"biocristal/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handlers for the plain catalog entities. These have no business rules
// beyond uniqueness, so they talk to the repositories directly.

// ─── Categorias ──────────────────────────────────────────────────────────────

type CategoriaHandler struct {
	repo repository.CategoriaRepository
}

func NewCategoriaHandler(repo repository.CategoriaRepository) *CategoriaHandler {
	return &CategoriaHandler{repo: repo}
}

func (h *CategoriaHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria := model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := h.repo.Create(c.Request.Context(), &categoria); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

func (h *CategoriaHandler) Obtener(c *gin.Context) {
	categoria, err := h.repo.FindByNombre(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Listar(c *gin.Context) {
	categorias, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *CategoriaHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.repo.FindByNombre(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Descripcion != nil {
		categoria.Descripcion = req.Descripcion
	}
	if err := h.repo.Update(c.Request.Context(), categoria); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("nombre")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Categoria eliminada"})
}

// ─── Ubicaciones ─────────────────────────────────────────────────────────────

type UbicacionHandler struct {
	repo repository.UbicacionRepository
}

func NewUbicacionHandler(repo repository.UbicacionRepository) *UbicacionHandler {
	return &UbicacionHandler{repo: repo}
}

func (h *UbicacionHandler) Crear(c *gin.Context) {
	var req dto.CrearUbicacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ubicacion := model.Ubicacion{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := h.repo.Create(c.Request.Context(), &ubicacion); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ubicacion)
}

func (h *UbicacionHandler) Obtener(c *gin.Context) {
	ubicacion, err := h.repo.FindByNombre(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ubicacion)
}

func (h *UbicacionHandler) Listar(c *gin.Context) {
	ubicaciones, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ubicaciones)
}

func (h *UbicacionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUbicacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ubicacion, err := h.repo.FindByNombre(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Descripcion != nil {
		ubicacion.Descripcion = req.Descripcion
	}
	if err := h.repo.Update(c.Request.Context(), ubicacion); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ubicacion)
}

func (h *UbicacionHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("nombre")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Ubicacion eliminada"})
}

// ─── Clientes ────────────────────────────────────────────────────────────────

type ClienteHandler struct {
	repo repository.ClienteRepository
}

func NewClienteHandler(repo repository.ClienteRepository) *ClienteHandler {
	return &ClienteHandler{repo: repo}
}

func (h *ClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente := model.Cliente{
		Documento: req.Documento,
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
	}
	if err := h.repo.Create(c.Request.Context(), &cliente); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) Obtener(c *gin.Context) {
	cliente, err := h.repo.FindByDocumento(c.Request.Context(), c.Param("documento"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Listar(c *gin.Context) {
	clientes, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.repo.FindByDocumento(c.Request.Context(), c.Param("documento"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Nombre != "" {
		cliente.Nombre = req.Nombre
	}
	if req.Telefono != nil {
		cliente.Telefono = req.Telefono
	}
	if req.Email != nil {
		cliente.Email = req.Email
	}
	if req.Direccion != nil {
		cliente.Direccion = req.Direccion
	}
	if err := h.repo.Update(c.Request.Context(), cliente); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("documento")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Cliente eliminado"})
}

// ─── Proveedores ─────────────────────────────────────────────────────────────

type ProveedorHandler struct {
	repo repository.ProveedorRepository
}

func NewProveedorHandler(repo repository.ProveedorRepository) *ProveedorHandler {
	return &ProveedorHandler{repo: repo}
}

func (h *ProveedorHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor := model.Proveedor{
		Nit:       req.Nit,
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
	}
	if err := h.repo.Create(c.Request.Context(), &proveedor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proveedor)
}

func (h *ProveedorHandler) Obtener(c *gin.Context) {
	proveedor, err := h.repo.FindByNit(c.Request.Context(), c.Param("nit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedor)
}

func (h *ProveedorHandler) Listar(c *gin.Context) {
	proveedores, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedores)
}

func (h *ProveedorHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.repo.FindByNit(c.Request.Context(), c.Param("nit"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Nombre != "" {
		proveedor.Nombre = req.Nombre
	}
	if req.Telefono != nil {
		proveedor.Telefono = req.Telefono
	}
	if req.Email != nil {
		proveedor.Email = req.Email
	}
	if req.Direccion != nil {
		proveedor.Direccion = req.Direccion
	}
	if err := h.repo.Update(c.Request.Context(), proveedor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedor)
}

func (h *ProveedorHandler) Eliminar(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("nit")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Mensaje{Mensaje: "Proveedor eliminado"})
}
