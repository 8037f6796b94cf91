package service

import (
	"context"

	"biocristal/internal/dto"
	"biocristal/internal/model"
	"biocristal/internal/repository"

	"github.com/redis/go-redis/v9"
)

// PrecioCacheKey is the redis key for the public price-check cache.
func PrecioCacheKey(codigo string) string { return "precio:" + codigo }

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	Obtener(ctx context.Context, codigo string) (*model.Producto, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Actualizar(ctx context.Context, codigo string, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Eliminar(ctx context.Context, codigo string) error
	AjustarStock(ctx context.Context, codigo string, req dto.AjustarStockRequest) (*model.Producto, error)
}

type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	unidad := req.UnidadMedida
	if unidad == "" {
		unidad = "unidad"
	}
	p := &model.Producto{
		Codigo:       req.Codigo,
		Nombre:       req.Nombre,
		UnidadMedida: unidad,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		Stock:        req.Stock,
		Ubicacion:    req.Ubicacion,
		ProveedorNit: req.ProveedorNit,
		Categoria:    req.Categoria,
		Imagen:       req.Imagen,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) Obtener(ctx context.Context, codigo string) (*model.Producto, error) {
	return s.repo.FindByCodigo(ctx, codigo)
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *productoService) Actualizar(ctx context.Context, codigo string, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if req.Nombre != "" {
		p.Nombre = req.Nombre
	}
	if req.UnidadMedida != "" {
		p.UnidadMedida = req.UnidadMedida
	}
	if req.PrecioCompra != nil {
		p.PrecioCompra = *req.PrecioCompra
	}
	if req.PrecioVenta != nil {
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.Ubicacion != nil {
		p.Ubicacion = req.Ubicacion
	}
	if req.ProveedorNit != nil {
		p.ProveedorNit = req.ProveedorNit
	}
	if req.Categoria != nil {
		p.Categoria = req.Categoria
	}
	if req.Imagen != nil {
		p.Imagen = req.Imagen
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx, codigo)
	return p, nil
}

func (s *productoService) Eliminar(ctx context.Context, codigo string) error {
	if err := s.repo.Delete(ctx, codigo); err != nil {
		return err
	}
	s.invalidarCache(ctx, codigo)
	return nil
}

func (s *productoService) AjustarStock(ctx context.Context, codigo string, req dto.AjustarStockRequest) (*model.Producto, error) {
	if _, err := s.repo.FindByCodigo(ctx, codigo); err != nil {
		return nil, err
	}
	if err := s.repo.AjustarStock(ctx, codigo, req.Delta); err != nil {
		return nil, err
	}
	return s.repo.FindByCodigo(ctx, codigo)
}

// invalidarCache drops the stale price-check entry; best-effort.
func (s *productoService) invalidarCache(ctx context.Context, codigo string) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, PrecioCacheKey(codigo))
}
