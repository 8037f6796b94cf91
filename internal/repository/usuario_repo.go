package repository

import (
	"context"
	"errors"
	"time"

	"biocristal/internal/apierror"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByDocumento(ctx context.Context, documento string) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	Delete(ctx context.Context, documento string) error

	// GuardarResetToken overwrites any prior token — one active token per user.
	GuardarResetToken(ctx context.Context, documento, token string, creado time.Time) error

	// FindByResetToken matches the token AND its validity window in one query:
	// reset_token = ? AND reset_token_creado > desde. A consumed token never
	// matches again because the field is cleared on use.
	FindByResetToken(ctx context.Context, token string, desde time.Time) (*model.Usuario, error)

	// ConsumirResetToken sets the new password hash and clears both reset
	// fields in a single UPDATE, making the token strictly single-use.
	ConsumirResetToken(ctx context.Context, documento, passwordHash string) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.ErrYaExiste
	}
	return err
}

func (r *usuarioRepo) FindByDocumento(ctx context.Context, documento string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "documento = ?", documento).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &u, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNoEncontrado
	}
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, documento string) error {
	res := r.db.WithContext(ctx).Delete(&model.Usuario{}, "documento = ?", documento)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}

func (r *usuarioRepo) GuardarResetToken(ctx context.Context, documento, token string, creado time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("documento = ?", documento).
		Updates(map[string]interface{}{
			"reset_token":        token,
			"reset_token_creado": creado,
		}).Error
}

func (r *usuarioRepo) FindByResetToken(ctx context.Context, token string, desde time.Time) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_creado > ?", token, desde).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrTokenInvalido
	}
	return &u, err
}

func (r *usuarioRepo) ConsumirResetToken(ctx context.Context, documento, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("documento = ?", documento).
		Updates(map[string]interface{}{
			"password_hash":      passwordHash,
			"reset_token":        nil,
			"reset_token_creado": nil,
		}).Error
}
