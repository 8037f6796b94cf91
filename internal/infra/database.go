package infra

import (
	"fmt"

	"biocristal/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the full entity set. TranslateError lets repositories detect duplicate
// natural keys via gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates/updates all tables. Also used by the e2e harness.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Categoria{},
		&model.Ubicacion{},
		&model.Proveedor{},
		&model.Cliente{},
		&model.Producto{},
		&model.Transaccion{},
		&model.Factura{},
		&model.FacturaItem{},
		&model.Devolucion{},
		&model.Importacion{},
		&model.Exportacion{},
		&model.Mantenimiento{},
		&model.Usuario{},
	)
}
