package main

// Seeds (or resets) the initial administrator account. Idempotent: if the
// document already exists the password and role are updated in place.
//
//	SEED_DOCUMENTO=1000001 SEED_EMAIL=admin@biocristal.com SEED_PASSWORD=... go run ./cmd/seeduser

import (
	"os"

	"biocristal/internal/config"
	"biocristal/internal/infra"
	"biocristal/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}

	documento := envOr("SEED_DOCUMENTO", "1000001")
	nombre := envOr("SEED_NOMBRE", "Administrador")
	email := envOr("SEED_EMAIL", "admin@biocristal.com")
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal().Msg("SEED_PASSWORD es obligatorio")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a postgres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo generar el hash")
	}

	user := model.Usuario{
		Documento:    documento,
		Nombre:       nombre,
		Email:        email,
		Rol:          "Administrador",
		PasswordHash: string(hash),
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "documento"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "email", "rol", "password_hash"}),
	}).Create(&user).Error
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el usuario")
	}

	log.Info().Str("documento", documento).Str("email", email).Msg("usuario administrador listo")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
