package service

import (
	"context"
	"fmt"

	"biocristal/internal/dto"
	"biocristal/internal/model"
	"biocristal/internal/repository"

	"gorm.io/gorm"
)

// cantidadDevolucion is the fixed number of units restored per return record.
// Returns are single-unit; the record carries no quantity field.
const cantidadDevolucion = 1

type DevolucionService interface {
	Crear(ctx context.Context, req dto.CrearDevolucionRequest) (*model.Devolucion, error)
	Obtener(ctx context.Context, codigo string) (*model.Devolucion, error)
	Listar(ctx context.Context) ([]model.Devolucion, error)
	Actualizar(ctx context.Context, codigo string, req dto.ActualizarDevolucionRequest) (*model.Devolucion, error)
	Eliminar(ctx context.Context, codigo string) error
}

type devolucionService struct {
	repo         repository.DevolucionRepository
	facturaRepo  repository.FacturaRepository
	productoRepo repository.ProductoRepository
}

func NewDevolucionService(
	repo repository.DevolucionRepository,
	facturaRepo repository.FacturaRepository,
	productoRepo repository.ProductoRepository,
) DevolucionService {
	return &devolucionService{repo: repo, facturaRepo: facturaRepo, productoRepo: productoRepo}
}

// Crear records the return and restores one unit of stock in one transaction.
func (s *devolucionService) Crear(ctx context.Context, req dto.CrearDevolucionRequest) (*model.Devolucion, error) {
	if _, err := s.facturaRepo.FindByCodigo(ctx, req.CodigoFactura); err != nil {
		return nil, fmt.Errorf("factura %s: %w", req.CodigoFactura, err)
	}
	if _, err := s.productoRepo.FindByCodigo(ctx, req.CodigoProducto); err != nil {
		return nil, fmt.Errorf("producto %s: %w", req.CodigoProducto, err)
	}

	devolucion := model.Devolucion{
		Codigo:         req.CodigoDevolucion,
		Fecha:          parseFecha(req.Fecha),
		Motivo:         req.Motivo,
		FacturaCodigo:  req.CodigoFactura,
		ProductoCodigo: req.CodigoProducto,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &devolucion); err != nil {
			return err
		}
		return s.productoRepo.RestaurarStockTx(tx, req.CodigoProducto, cantidadDevolucion)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &devolucion, nil
}

func (s *devolucionService) Obtener(ctx context.Context, codigo string) (*model.Devolucion, error) {
	return s.repo.FindByCodigo(ctx, codigo)
}

func (s *devolucionService) Listar(ctx context.Context) ([]model.Devolucion, error) {
	return s.repo.List(ctx)
}

// Actualizar edits the descriptive fields only; it never touches stock.
func (s *devolucionService) Actualizar(ctx context.Context, codigo string, req dto.ActualizarDevolucionRequest) (*model.Devolucion, error) {
	devolucion, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if req.Fecha != "" {
		devolucion.Fecha = parseFecha(req.Fecha)
	}
	if req.Motivo != "" {
		devolucion.Motivo = req.Motivo
	}
	if err := s.repo.Update(ctx, devolucion); err != nil {
		return nil, err
	}
	return devolucion, nil
}

// Eliminar removes the record without reversing the stock restore, matching
// the ledger rule that only creation has a stock side effect.
func (s *devolucionService) Eliminar(ctx context.Context, codigo string) error {
	return s.repo.Delete(ctx, codigo)
}
