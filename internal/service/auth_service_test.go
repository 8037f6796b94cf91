package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"biocristal/internal/apierror"
	"biocristal/internal/config"
	"biocristal/internal/dto"
	"biocristal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
		Domain:             "http://localhost:5173",
	}
}

func usuarioConPassword(t *testing.T, documento, email, password string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Usuario{
		Documento:    documento,
		Nombre:       "Ana Torres",
		Email:        email,
		Rol:          "Empleado",
		PasswordHash: string(hash),
	}
}

func TestLogin(t *testing.T) {
	repo := newStubUsuarioRepo(usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura"))
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@biocristal.com", Password: "clave-segura",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "123", resp.User.Documento)
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	repo := newStubUsuarioRepo(usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura"))
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@biocristal.com", Password: "otra-clave",
	})
	assert.True(t, errors.Is(err, apierror.ErrCredenciales))
}

func TestLoginEmailDesconocido(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), &stubDispatcher{}, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@biocristal.com", Password: "lo-que-sea",
	})
	// Same error as a wrong password — no way to tell the cases apart.
	assert.True(t, errors.Is(err, apierror.ErrCredenciales))
}

func TestRefresh(t *testing.T) {
	repo := newStubUsuarioRepo(usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura"))
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@biocristal.com", Password: "clave-segura",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "123", resp.User.Documento)
}

func TestRefreshTokenBasura(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), &stubDispatcher{}, testConfig())

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.True(t, errors.Is(err, apierror.ErrTokenInvalido))
}

func TestForgotPasswordGeneraTokenYEncolaCorreo(t *testing.T) {
	user := usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura")
	repo := newStubUsuarioRepo(user)
	dispatcher := &stubDispatcher{}
	svc := NewAuthService(repo, dispatcher, testConfig())

	require.NoError(t, svc.ForgotPassword(context.Background(), "ana@biocristal.com"))

	require.NotNil(t, user.ResetToken)
	require.NotNil(t, user.ResetTokenCreado)
	assert.Len(t, *user.ResetToken, 64) // 32 bytes hex

	require.Len(t, dispatcher.enviados, 1)
	correo := dispatcher.enviados[0]
	assert.Equal(t, "ana@biocristal.com", correo["to_email"])
	assert.Contains(t, correo["html"], *user.ResetToken)
}

func TestForgotPasswordEmailDesconocido(t *testing.T) {
	dispatcher := &stubDispatcher{}
	svc := NewAuthService(newStubUsuarioRepo(), dispatcher, testConfig())

	// Indistinguishable from the success path: nil error, nothing enqueued.
	require.NoError(t, svc.ForgotPassword(context.Background(), "nadie@biocristal.com"))
	assert.Empty(t, dispatcher.enviados)
}

func TestForgotPasswordSobrescribeTokenAnterior(t *testing.T) {
	user := usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura")
	repo := newStubUsuarioRepo(user)
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	require.NoError(t, svc.ForgotPassword(context.Background(), "ana@biocristal.com"))
	primero := *user.ResetToken

	require.NoError(t, svc.ForgotPassword(context.Background(), "ana@biocristal.com"))
	segundo := *user.ResetToken

	assert.NotEqual(t, primero, segundo)

	// The replaced token no longer matches anything.
	err := svc.ResetPassword(context.Background(), primero, "nueva-clave-123")
	assert.True(t, errors.Is(err, apierror.ErrTokenInvalido))
}

func TestResetPasswordConsumeElToken(t *testing.T) {
	user := usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura")
	repo := newStubUsuarioRepo(user)
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	require.NoError(t, svc.ForgotPassword(context.Background(), "ana@biocristal.com"))
	token := *user.ResetToken

	require.NoError(t, svc.ResetPassword(context.Background(), token, "nueva-clave-123"))

	// Password changed, token cleared.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("nueva-clave-123")))
	assert.Nil(t, user.ResetToken)
	assert.Nil(t, user.ResetTokenCreado)

	// Single use: the same token is rejected the second time.
	err := svc.ResetPassword(context.Background(), token, "otra-clave-456")
	assert.True(t, errors.Is(err, apierror.ErrTokenInvalido))
}

func TestResetPasswordTokenExpirado(t *testing.T) {
	user := usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura")
	token := "abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789"
	creado := time.Now().Add(-6 * time.Minute)
	user.ResetToken = &token
	user.ResetTokenCreado = &creado
	hashOriginal := user.PasswordHash

	repo := newStubUsuarioRepo(user)
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	err := svc.ResetPassword(context.Background(), token, "nueva-clave-123")
	assert.True(t, errors.Is(err, apierror.ErrTokenInvalido))
	assert.Equal(t, hashOriginal, user.PasswordHash)
}

func TestResetPasswordTokenDentroDeVentana(t *testing.T) {
	user := usuarioConPassword(t, "123", "ana@biocristal.com", "clave-segura")
	token := "abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789"
	creado := time.Now().Add(-4 * time.Minute)
	user.ResetToken = &token
	user.ResetTokenCreado = &creado

	repo := newStubUsuarioRepo(user)
	svc := NewAuthService(repo, &stubDispatcher{}, testConfig())

	require.NoError(t, svc.ResetPassword(context.Background(), token, "nueva-clave-123"))
}

func TestCrearUsuarioNoExponeHash(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), &stubDispatcher{}, testConfig())

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Documento: "456",
		Nombre:    "Luis Gomez",
		Email:     "luis@biocristal.com",
		Password:  "clave-segura",
		Rol:       "Administrador",
	})
	require.NoError(t, err)
	assert.Equal(t, "456", resp.Documento)
	assert.Equal(t, "Administrador", resp.Rol)
}
