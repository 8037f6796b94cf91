package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"biocristal/internal/dto"
	"biocristal/internal/model"
	"biocristal/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FacturaService interface {
	Crear(ctx context.Context, req dto.CrearFacturaRequest) (*model.Factura, error)
	Obtener(ctx context.Context, codigo string) (*model.Factura, error)
	Listar(ctx context.Context, filter dto.FacturaFilter) ([]model.Factura, int64, error)
	Actualizar(ctx context.Context, codigo string, req dto.ActualizarFacturaRequest) (*model.Factura, error)
	Eliminar(ctx context.Context, codigo string) error
}

type facturaService struct {
	repo            repository.FacturaRepository
	productoRepo    repository.ProductoRepository
	transaccionRepo repository.TransaccionRepository
}

func NewFacturaService(
	repo repository.FacturaRepository,
	productoRepo repository.ProductoRepository,
	transaccionRepo repository.TransaccionRepository,
) FacturaService {
	return &facturaService{repo: repo, productoRepo: productoRepo, transaccionRepo: transaccionRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// parseFecha accepts YYYY-MM-DD; empty means today.
func parseFecha(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Now()
	}
	return t
}

func nuevoCodigoTransaccion() string {
	return "TRX-" + uuid.NewString()[:8]
}

type lineaResuelta struct {
	codigo   string
	nombre   string
	cantidad int
	precio   decimal.Decimal
}

// resolverItems validates every referenced product up front (outside the
// transaction) and fixes the unit price: the request price when given,
// otherwise the product's current sale price.
func (s *facturaService) resolverItems(ctx context.Context, items []dto.ItemFacturaRequest) ([]lineaResuelta, decimal.Decimal, error) {
	resueltas := make([]lineaResuelta, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		p, err := s.productoRepo.FindByCodigo(ctx, item.CodigoProducto)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("producto %s: %w", item.CodigoProducto, err)
		}
		precio := item.PrecioUnitario
		if precio.IsZero() {
			precio = p.PrecioVenta
		}
		total = total.Add(precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
		resueltas = append(resueltas, lineaResuelta{
			codigo:   p.Codigo,
			nombre:   p.Nombre,
			cantidad: item.Cantidad,
			precio:   precio,
		})
	}
	return resueltas, total, nil
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// All-or-nothing: invoice row, line items, per-line conditional stock
// decrements and the ledger row commit in one transaction. Any line short on
// stock aborts the whole thing.

func (s *facturaService) Crear(ctx context.Context, req dto.CrearFacturaRequest) (*model.Factura, error) {
	resueltas, total, err := s.resolverItems(ctx, req.ProductosVendidos)
	if err != nil {
		return nil, err
	}

	trxCodigo := nuevoCodigoTransaccion()
	descripcion := "Venta factura " + req.CodigoFactura
	factura := model.Factura{
		Codigo:            req.CodigoFactura,
		Fecha:             parseFecha(req.Fecha),
		TipoPago:          req.TipoPago,
		Total:             total,
		TransaccionCodigo: &trxCodigo,
		ClienteDocumento:  req.DocumentoCliente,
	}
	for _, l := range resueltas {
		factura.Items = append(factura.Items, model.FacturaItem{
			ProductoCodigo: l.codigo,
			Cantidad:       l.cantidad,
			PrecioUnitario: l.precio,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.transaccionRepo.CreateTx(tx, &model.Transaccion{
			Codigo:      trxCodigo,
			Fecha:       factura.Fecha,
			Tipo:        "venta",
			Monto:       total,
			Descripcion: &descripcion,
		}); err != nil {
			return err
		}
		if err := s.repo.CreateTx(tx, &factura); err != nil {
			return err
		}
		for _, l := range resueltas {
			if err := s.productoRepo.DescontarStockTx(tx, l.codigo, l.cantidad); err != nil {
				return fmt.Errorf("producto %s: %w", l.nombre, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &factura, nil
}

func (s *facturaService) Obtener(ctx context.Context, codigo string) (*model.Factura, error) {
	return s.repo.FindByCodigo(ctx, codigo)
}

func (s *facturaService) Listar(ctx context.Context, filter dto.FacturaFilter) ([]model.Factura, int64, error) {
	return s.repo.List(ctx, filter)
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Replaces the invoice's line items. Stock is adjusted by the per-product
// delta between the old and new aggregate quantities: a product only in the
// old set gets its units restored, a product only in the new set is
// decremented, and both directions commit atomically with the item swap.

func (s *facturaService) Actualizar(ctx context.Context, codigo string, req dto.ActualizarFacturaRequest) (*model.Factura, error) {
	existente, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}

	resueltas, total, err := s.resolverItems(ctx, req.ProductosVendidos)
	if err != nil {
		return nil, err
	}

	viejas := make(map[string]int)
	for _, item := range existente.Items {
		viejas[item.ProductoCodigo] += item.Cantidad
	}
	nuevas := make(map[string]int)
	for _, l := range resueltas {
		nuevas[l.codigo] += l.cantidad
	}

	// Deterministic order keeps concurrent multi-line edits from deadlocking
	// on row locks.
	afectados := make([]string, 0, len(viejas)+len(nuevas))
	seen := make(map[string]bool)
	for c := range viejas {
		afectados = append(afectados, c)
		seen[c] = true
	}
	for c := range nuevas {
		if !seen[c] {
			afectados = append(afectados, c)
		}
	}
	sort.Strings(afectados)

	actualizada := *existente
	actualizada.TipoPago = req.TipoPago
	if req.TipoPago == "" {
		actualizada.TipoPago = existente.TipoPago
	}
	if req.Fecha != "" {
		actualizada.Fecha = parseFecha(req.Fecha)
	}
	if req.DocumentoCliente != nil {
		actualizada.ClienteDocumento = req.DocumentoCliente
	}
	actualizada.Total = total

	items := make([]model.FacturaItem, 0, len(resueltas))
	for _, l := range resueltas {
		items = append(items, model.FacturaItem{
			ProductoCodigo: l.codigo,
			Cantidad:       l.cantidad,
			PrecioUnitario: l.precio,
		})
	}

	trxCodigo := nuevoCodigoTransaccion()
	descripcion := "Ajuste factura " + codigo

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, c := range afectados {
			delta := nuevas[c] - viejas[c]
			switch {
			case delta > 0:
				if err := s.productoRepo.DescontarStockTx(tx, c, delta); err != nil {
					return fmt.Errorf("producto %s: %w", c, err)
				}
			case delta < 0:
				if err := s.productoRepo.RestaurarStockTx(tx, c, -delta); err != nil {
					return err
				}
			}
		}
		if err := s.repo.ReplaceItemsTx(tx, codigo, items); err != nil {
			return err
		}
		if err := s.repo.UpdateHeaderTx(tx, &actualizada); err != nil {
			return err
		}
		return s.transaccionRepo.CreateTx(tx, &model.Transaccion{
			Codigo:      trxCodigo,
			Fecha:       time.Now(),
			Tipo:        "ajuste",
			Monto:       total.Sub(existente.Total),
			Descripcion: &descripcion,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	actualizada.Items = items
	return &actualizada, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func (s *facturaService) Eliminar(ctx context.Context, codigo string) error {
	existente, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return err
	}

	trxCodigo := nuevoCodigoTransaccion()
	descripcion := "Anulacion factura " + codigo

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range existente.Items {
			if err := s.productoRepo.RestaurarStockTx(tx, item.ProductoCodigo, item.Cantidad); err != nil {
				return err
			}
		}
		if err := s.repo.DeleteTx(tx, codigo); err != nil {
			return err
		}
		return s.transaccionRepo.CreateTx(tx, &model.Transaccion{
			Codigo:      trxCodigo,
			Fecha:       time.Now(),
			Tipo:        "anulacion",
			Monto:       existente.Total.Neg(),
			Descripcion: &descripcion,
		})
	})
}
