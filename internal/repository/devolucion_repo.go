package repository

import (
	"context"
	"errors"

	"biocristal/internal/apierror"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

type DevolucionRepository interface {
	// CreateTx inserts the return row inside the stock-restore transaction.
	CreateTx(tx *gorm.DB, d *model.Devolucion) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Devolucion, error)
	List(ctx context.Context) ([]model.Devolucion, error)
	Update(ctx context.Context, d *model.Devolucion) error
	Delete(ctx context.Context, codigo string) error
	DB() *gorm.DB
}

type devolucionRepo struct{ db *gorm.DB }

func NewDevolucionRepository(db *gorm.DB) DevolucionRepository { return &devolucionRepo{db: db} }

func (r *devolucionRepo) CreateTx(tx *gorm.DB, d *model.Devolucion) error {
	err := tx.Create(d).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrYaExiste
	}
	return err
}

func (r *devolucionRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Devolucion, error) {
	var d model.Devolucion
	err := r.db.WithContext(ctx).First(&d, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &d, err
}

func (r *devolucionRepo) List(ctx context.Context) ([]model.Devolucion, error) {
	var devoluciones []model.Devolucion
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&devoluciones).Error
	return devoluciones, err
}

func (r *devolucionRepo) Update(ctx context.Context, d *model.Devolucion) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *devolucionRepo) Delete(ctx context.Context, codigo string) error {
	res := r.db.WithContext(ctx).Delete(&model.Devolucion{}, "codigo = ?", codigo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}

func (r *devolucionRepo) DB() *gorm.DB { return r.db }
