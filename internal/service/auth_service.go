package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"biocristal/internal/apierror"
	"biocristal/internal/config"
	"biocristal/internal/dto"
	"biocristal/internal/model"
	"biocristal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ventanaResetToken is the validity window of a password-reset token,
// evaluated at consumption time. Expired tokens are never swept.
const ventanaResetToken = 5 * time.Minute

// EmailDispatcher enqueues outbound mail; satisfied by *worker.Dispatcher.
type EmailDispatcher interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)

	// ForgotPassword issues a reset token. It reports nil for unknown emails
	// so the endpoint can answer identically in both cases.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a token: one matching lookup bounded by the
	// validity window, then password update + token clear in a single write.
	ResetPassword(ctx context.Context, token, password string) error

	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, documento string) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, documento string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, documento string) error
}

type authService struct {
	repo       repository.UsuarioRepository
	dispatcher EmailDispatcher
	cfg        *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, dispatcher EmailDispatcher, cfg *config.Config) AuthService {
	return &authService{repo: repo, dispatcher: dispatcher, cfg: cfg}
}

// ── Login / Refresh ───────────────────────────────────────────────────────────

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.ErrCredenciales
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.ErrCredenciales
	}

	return s.buildLoginResponse(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.ErrTokenInvalido
	}
	documento, ok := claims["documento"].(string)
	if !ok {
		return nil, apierror.ErrTokenInvalido
	}

	user, err := s.repo.FindByDocumento(ctx, documento)
	if err != nil {
		return nil, apierror.ErrTokenInvalido
	}

	return s.buildLoginResponse(user)
}

func (s *authService) buildLoginResponse(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"documento": user.Documento,
		"email":     user.Email,
		"rol":       user.Rol,
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ── Password reset ────────────────────────────────────────────────────────────

// nuevoResetToken returns 256 bits of entropy as hex.
func nuevoResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email: same outcome as success, nothing persisted.
		return nil
	}

	token, err := nuevoResetToken()
	if err != nil {
		return err
	}
	if err := s.repo.GuardarResetToken(ctx, user.Documento, token, time.Now()); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s", s.cfg.Domain, token)
	html := fmt.Sprintf(
		`<p>Hola %s,</p><p>Para restablecer tu contraseña haz clic en el siguiente enlace (válido por 5 minutos):</p><p><a href="%s">%s</a></p><p>Si no solicitaste este cambio, ignora este correo.</p>`,
		user.Nombre, link, link,
	)

	// The token is already persisted: an enqueue failure is reported upstream
	// but does not invalidate it.
	return s.dispatcher.EnqueueEmail(ctx, map[string]string{
		"to_email": user.Email,
		"subject":  "BioCristal — restablecer contraseña",
		"html":     html,
	})
}

func (s *authService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.repo.FindByResetToken(ctx, token, time.Now().Add(-ventanaResetToken))
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	return s.repo.ConsumirResetToken(ctx, user.Documento, string(hash))
}

// ── Usuarios CRUD ─────────────────────────────────────────────────────────────

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Documento:    req.Documento,
		Nombre:       req.Nombre,
		Email:        req.Email,
		Rol:          req.Rol,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, documento string) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByDocumento(ctx, documento)
	if err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = usuarioToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, documento string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByDocumento(ctx, documento)
	if err != nil {
		return nil, err
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Rol != "" {
		user.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, documento string) error {
	return s.repo.Delete(ctx, documento)
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		Documento: u.Documento,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
	}
}
