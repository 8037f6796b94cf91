package repository

import (
	"context"
	"errors"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

type FacturaRepository interface {
	// CreateTx inserts the invoice and its line items inside a live
	// transaction. A nil tx (stub mode) is passed through by the service's
	// runTx helper.
	CreateTx(tx *gorm.DB, f *model.Factura) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Factura, error)
	List(ctx context.Context, filter dto.FacturaFilter) ([]model.Factura, int64, error)

	// UpdateHeaderTx persists header fields (fecha, tipo_pago, cliente, total).
	UpdateHeaderTx(tx *gorm.DB, f *model.Factura) error

	// ReplaceItemsTx drops the invoice's current line items and inserts the
	// new set, all inside the caller's transaction.
	ReplaceItemsTx(tx *gorm.DB, codigo string, items []model.FacturaItem) error

	// DeleteTx removes the invoice and its line items.
	DeleteTx(tx *gorm.DB, codigo string) error

	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	err := tx.Create(f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrYaExiste
	}
	return err
}

func (r *facturaRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).Preload("Items").First(&f, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &f, err
}

func (r *facturaRepo) List(ctx context.Context, filter dto.FacturaFilter) ([]model.Factura, int64, error) {
	var facturas []model.Factura
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Factura{})
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha) = ?", filter.Fecha)
	}
	if filter.Cliente != "" {
		q = q.Where("cliente_documento = ?", filter.Cliente)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").Order("fecha DESC").Limit(filter.Limit).Offset(offset).Find(&facturas).Error
	return facturas, total, err
}

func (r *facturaRepo) UpdateHeaderTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Model(&model.Factura{}).Where("codigo = ?", f.Codigo).
		Updates(map[string]interface{}{
			"fecha":             f.Fecha,
			"tipo_pago":         f.TipoPago,
			"total":             f.Total,
			"cliente_documento": f.ClienteDocumento,
		}).Error
}

func (r *facturaRepo) ReplaceItemsTx(tx *gorm.DB, codigo string, items []model.FacturaItem) error {
	if err := tx.Where("factura_codigo = ?", codigo).Delete(&model.FacturaItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].FacturaCodigo = codigo
	}
	return tx.Create(&items).Error
}

func (r *facturaRepo) DeleteTx(tx *gorm.DB, codigo string) error {
	if err := tx.Where("factura_codigo = ?", codigo).Delete(&model.FacturaItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Factura{}, "codigo = ?", codigo).Error
}

func (r *facturaRepo) DB() *gorm.DB { return r.db }
