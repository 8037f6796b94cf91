package repository

import (
	"context"

	"biocristal/internal/model"

	"gorm.io/gorm"
)

// Repositories for the operational record entities (imports, exports,
// maintenance). Same uniform CRUD shape as the catalog repositories.

// ─── Importacion ─────────────────────────────────────────────────────────────

type ImportacionRepository interface {
	Create(ctx context.Context, i *model.Importacion) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Importacion, error)
	List(ctx context.Context) ([]model.Importacion, error)
	Update(ctx context.Context, i *model.Importacion) error
	Delete(ctx context.Context, codigo string) error
}

type importacionRepo struct{ db *gorm.DB }

func NewImportacionRepository(db *gorm.DB) ImportacionRepository { return &importacionRepo{db: db} }

func (r *importacionRepo) Create(ctx context.Context, i *model.Importacion) error {
	return translateCreate(r.db.WithContext(ctx).Create(i).Error)
}

func (r *importacionRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Importacion, error) {
	var i model.Importacion
	if err := r.db.WithContext(ctx).First(&i, "codigo = ?", codigo).Error; err != nil {
		return nil, translateFind(err)
	}
	return &i, nil
}

func (r *importacionRepo) List(ctx context.Context) ([]model.Importacion, error) {
	var importaciones []model.Importacion
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&importaciones).Error
	return importaciones, err
}

func (r *importacionRepo) Update(ctx context.Context, i *model.Importacion) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *importacionRepo) Delete(ctx context.Context, codigo string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Importacion{}, "codigo = ?", codigo))
}

// ─── Exportacion ─────────────────────────────────────────────────────────────

type ExportacionRepository interface {
	Create(ctx context.Context, e *model.Exportacion) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Exportacion, error)
	List(ctx context.Context) ([]model.Exportacion, error)
	Update(ctx context.Context, e *model.Exportacion) error
	Delete(ctx context.Context, codigo string) error
}

type exportacionRepo struct{ db *gorm.DB }

func NewExportacionRepository(db *gorm.DB) ExportacionRepository { return &exportacionRepo{db: db} }

func (r *exportacionRepo) Create(ctx context.Context, e *model.Exportacion) error {
	return translateCreate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *exportacionRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Exportacion, error) {
	var e model.Exportacion
	if err := r.db.WithContext(ctx).First(&e, "codigo = ?", codigo).Error; err != nil {
		return nil, translateFind(err)
	}
	return &e, nil
}

func (r *exportacionRepo) List(ctx context.Context) ([]model.Exportacion, error) {
	var exportaciones []model.Exportacion
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&exportaciones).Error
	return exportaciones, err
}

func (r *exportacionRepo) Update(ctx context.Context, e *model.Exportacion) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *exportacionRepo) Delete(ctx context.Context, codigo string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Exportacion{}, "codigo = ?", codigo))
}

// ─── Mantenimiento ───────────────────────────────────────────────────────────

type MantenimientoRepository interface {
	Create(ctx context.Context, m *model.Mantenimiento) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Mantenimiento, error)
	List(ctx context.Context) ([]model.Mantenimiento, error)
	Update(ctx context.Context, m *model.Mantenimiento) error
	Delete(ctx context.Context, codigo string) error
}

type mantenimientoRepo struct{ db *gorm.DB }

func NewMantenimientoRepository(db *gorm.DB) MantenimientoRepository {
	return &mantenimientoRepo{db: db}
}

func (r *mantenimientoRepo) Create(ctx context.Context, m *model.Mantenimiento) error {
	return translateCreate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *mantenimientoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Mantenimiento, error) {
	var m model.Mantenimiento
	if err := r.db.WithContext(ctx).First(&m, "codigo = ?", codigo).Error; err != nil {
		return nil, translateFind(err)
	}
	return &m, nil
}

func (r *mantenimientoRepo) List(ctx context.Context) ([]model.Mantenimiento, error) {
	var mantenimientos []model.Mantenimiento
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&mantenimientos).Error
	return mantenimientos, err
}

func (r *mantenimientoRepo) Update(ctx context.Context, m *model.Mantenimiento) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *mantenimientoRepo) Delete(ctx context.Context, codigo string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Mantenimiento{}, "codigo = ?", codigo))
}
