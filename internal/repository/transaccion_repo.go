package repository

import (
	"context"
	"errors"

	"biocristal/internal/apierror"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

type TransaccionRepository interface {
	Create(ctx context.Context, t *model.Transaccion) error

	// CreateTx writes a ledger row inside an invoice transaction so that the
	// money record commits or rolls back together with the stock adjustments.
	CreateTx(tx *gorm.DB, t *model.Transaccion) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Transaccion, error)
	List(ctx context.Context) ([]model.Transaccion, error)
	Update(ctx context.Context, t *model.Transaccion) error
	Delete(ctx context.Context, codigo string) error
}

type transaccionRepo struct{ db *gorm.DB }

func NewTransaccionRepository(db *gorm.DB) TransaccionRepository { return &transaccionRepo{db: db} }

func (r *transaccionRepo) Create(ctx context.Context, t *model.Transaccion) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrYaExiste
	}
	return err
}

func (r *transaccionRepo) CreateTx(tx *gorm.DB, t *model.Transaccion) error {
	return tx.Create(t).Error
}

func (r *transaccionRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Transaccion, error) {
	var t model.Transaccion
	err := r.db.WithContext(ctx).First(&t, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &t, err
}

func (r *transaccionRepo) List(ctx context.Context) ([]model.Transaccion, error) {
	var transacciones []model.Transaccion
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&transacciones).Error
	return transacciones, err
}

func (r *transaccionRepo) Update(ctx context.Context, t *model.Transaccion) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transaccionRepo) Delete(ctx context.Context, codigo string) error {
	res := r.db.WithContext(ctx).Delete(&model.Transaccion{}, "codigo = ?", codigo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}
