package repository

import (
	"context"
	"errors"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, codigo string) error

	// DescontarStockTx decrements stock inside a live transaction with a
	// decrement-if-sufficient conditional UPDATE. Zero rows affected means the
	// product is missing or short on stock; since callers resolve the product
	// first, it is reported as ErrStockInsuficiente.
	DescontarStockTx(tx *gorm.DB, codigo string, cantidad int) error

	// RestaurarStockTx adds cantidad units back inside a live transaction.
	RestaurarStockTx(tx *gorm.DB, codigo string, cantidad int) error

	// AjustarStock applies a signed manual delta outside any caller
	// transaction; negative deltas that would drive stock below zero are
	// rejected.
	AjustarStock(ctx context.Context, codigo string, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	// Stub implementations return nil.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrYaExiste
	}
	return err
}

func (r *productoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.Ubicacion != "" {
		q = q.Where("ubicacion = ?", filter.Ubicacion)
	}
	if filter.Proveedor != "" {
		q = q.Where("proveedor_nit = ?", filter.Proveedor)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, codigo string) error {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, "codigo = ?", codigo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, codigo string, cantidad int) error {
	res := tx.Model(&model.Producto{}).
		Where("codigo = ? AND stock >= ?", codigo, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrStockInsuficiente
	}
	return nil
}

func (r *productoRepo) RestaurarStockTx(tx *gorm.DB, codigo string, cantidad int) error {
	return tx.Model(&model.Producto{}).
		Where("codigo = ?", codigo).
		Update("stock", gorm.Expr("stock + ?", cantidad)).Error
}

func (r *productoRepo) AjustarStock(ctx context.Context, codigo string, delta int) error {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("codigo = ? AND stock + ? >= 0", codigo, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrStockInsuficiente
	}
	return nil
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
