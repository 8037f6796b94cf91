package repository

import (
	"context"
	"errors"

	"biocristal/internal/apierror"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

// Repositories for the plain catalog entities. Single-table CRUD, natural
// keys, no cross-entity coupling.

func translateCreate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrYaExiste
	}
	return err
}

func translateFind(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.ErrNoEncontrado
	}
	return err
}

func checkDeleted(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}

// ─── Categoria ───────────────────────────────────────────────────────────────

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	List(ctx context.Context) ([]model.Categoria, error)
	Update(ctx context.Context, c *model.Categoria) error
	Delete(ctx context.Context, nombre string) error
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return translateCreate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoriaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).First(&c, "nombre = ?", nombre).Error; err != nil {
		return nil, translateFind(err)
	}
	return &c, nil
}

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, nombre string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Categoria{}, "nombre = ?", nombre))
}

// ─── Ubicacion ───────────────────────────────────────────────────────────────

type UbicacionRepository interface {
	Create(ctx context.Context, u *model.Ubicacion) error
	FindByNombre(ctx context.Context, nombre string) (*model.Ubicacion, error)
	List(ctx context.Context) ([]model.Ubicacion, error)
	Update(ctx context.Context, u *model.Ubicacion) error
	Delete(ctx context.Context, nombre string) error
}

type ubicacionRepo struct{ db *gorm.DB }

func NewUbicacionRepository(db *gorm.DB) UbicacionRepository { return &ubicacionRepo{db: db} }

func (r *ubicacionRepo) Create(ctx context.Context, u *model.Ubicacion) error {
	return translateCreate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *ubicacionRepo) FindByNombre(ctx context.Context, nombre string) (*model.Ubicacion, error) {
	var u model.Ubicacion
	if err := r.db.WithContext(ctx).First(&u, "nombre = ?", nombre).Error; err != nil {
		return nil, translateFind(err)
	}
	return &u, nil
}

func (r *ubicacionRepo) List(ctx context.Context) ([]model.Ubicacion, error) {
	var ubicaciones []model.Ubicacion
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&ubicaciones).Error
	return ubicaciones, err
}

func (r *ubicacionRepo) Update(ctx context.Context, u *model.Ubicacion) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *ubicacionRepo) Delete(ctx context.Context, nombre string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Ubicacion{}, "nombre = ?", nombre))
}

// ─── Cliente ─────────────────────────────────────────────────────────────────

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByDocumento(ctx context.Context, documento string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, documento string) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return translateCreate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *clienteRepo) FindByDocumento(ctx context.Context, documento string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, "documento = ?", documento).Error; err != nil {
		return nil, translateFind(err)
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, documento string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Cliente{}, "documento = ?", documento))
}

// ─── Proveedor ───────────────────────────────────────────────────────────────

type ProveedorRepository interface {
	Create(ctx context.Context, p *model.Proveedor) error
	FindByNit(ctx context.Context, nit string) (*model.Proveedor, error)
	List(ctx context.Context) ([]model.Proveedor, error)
	Update(ctx context.Context, p *model.Proveedor) error
	Delete(ctx context.Context, nit string) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return translateCreate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *proveedorRepo) FindByNit(ctx context.Context, nit string) (*model.Proveedor, error) {
	var p model.Proveedor
	if err := r.db.WithContext(ctx).First(&p, "nit = ?", nit).Error; err != nil {
		return nil, translateFind(err)
	}
	return &p, nil
}

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Delete(ctx context.Context, nit string) error {
	return checkDeleted(r.db.WithContext(ctx).Delete(&model.Proveedor{}, "nit = ?", nit))
}
