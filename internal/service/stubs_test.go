package service

// In-memory repository stubs. They return a nil *gorm.DB so runTx executes
// the transaction body directly, letting the service logic run without a
// database.

import (
	"context"
	"errors"
	"strings"
	"time"

	"biocristal/internal/apierror"
	"biocristal/internal/dto"
	"biocristal/internal/model"

	"gorm.io/gorm"
)

// ─── Producto ────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[string]*model.Producto
}

func newStubProductoRepo(productos ...*model.Producto) *stubProductoRepo {
	s := &stubProductoRepo{productos: make(map[string]*model.Producto)}
	for _, p := range productos {
		s.productos[p.Codigo] = p
	}
	return s
}

func (s *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if _, ok := s.productos[p.Codigo]; ok {
		return apierror.ErrYaExiste
	}
	s.productos[p.Codigo] = p
	return nil
}

func (s *stubProductoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	p, ok := s.productos[codigo]
	if !ok {
		return nil, apierror.ErrNoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (s *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(s.productos))
	for _, p := range s.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := s.productos[p.Codigo]; !ok {
		return apierror.ErrNoEncontrado
	}
	s.productos[p.Codigo] = p
	return nil
}

func (s *stubProductoRepo) Delete(_ context.Context, codigo string) error {
	if _, ok := s.productos[codigo]; !ok {
		return apierror.ErrNoEncontrado
	}
	delete(s.productos, codigo)
	return nil
}

func (s *stubProductoRepo) DescontarStockTx(_ *gorm.DB, codigo string, cantidad int) error {
	p, ok := s.productos[codigo]
	if !ok || p.Stock < cantidad {
		return apierror.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

func (s *stubProductoRepo) RestaurarStockTx(_ *gorm.DB, codigo string, cantidad int) error {
	p, ok := s.productos[codigo]
	if !ok {
		return apierror.ErrNoEncontrado
	}
	p.Stock += cantidad
	return nil
}

func (s *stubProductoRepo) AjustarStock(_ context.Context, codigo string, delta int) error {
	p, ok := s.productos[codigo]
	if !ok || p.Stock+delta < 0 {
		return apierror.ErrStockInsuficiente
	}
	p.Stock += delta
	return nil
}

func (s *stubProductoRepo) DB() *gorm.DB { return nil }

func (s *stubProductoRepo) stock(codigo string) int { return s.productos[codigo].Stock }

// ─── Factura ─────────────────────────────────────────────────────────────────

type stubFacturaRepo struct {
	facturas map[string]*model.Factura
}

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[string]*model.Factura)}
}

func (s *stubFacturaRepo) CreateTx(_ *gorm.DB, f *model.Factura) error {
	if _, ok := s.facturas[f.Codigo]; ok {
		return apierror.ErrYaExiste
	}
	copia := *f
	s.facturas[f.Codigo] = &copia
	return nil
}

func (s *stubFacturaRepo) FindByCodigo(_ context.Context, codigo string) (*model.Factura, error) {
	f, ok := s.facturas[codigo]
	if !ok {
		return nil, apierror.ErrNoEncontrado
	}
	copia := *f
	copia.Items = append([]model.FacturaItem(nil), f.Items...)
	return &copia, nil
}

func (s *stubFacturaRepo) List(_ context.Context, _ dto.FacturaFilter) ([]model.Factura, int64, error) {
	out := make([]model.Factura, 0, len(s.facturas))
	for _, f := range s.facturas {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (s *stubFacturaRepo) UpdateHeaderTx(_ *gorm.DB, f *model.Factura) error {
	existente, ok := s.facturas[f.Codigo]
	if !ok {
		return apierror.ErrNoEncontrado
	}
	existente.Fecha = f.Fecha
	existente.TipoPago = f.TipoPago
	existente.Total = f.Total
	existente.ClienteDocumento = f.ClienteDocumento
	return nil
}

func (s *stubFacturaRepo) ReplaceItemsTx(_ *gorm.DB, codigo string, items []model.FacturaItem) error {
	f, ok := s.facturas[codigo]
	if !ok {
		return apierror.ErrNoEncontrado
	}
	f.Items = append([]model.FacturaItem(nil), items...)
	return nil
}

func (s *stubFacturaRepo) DeleteTx(_ *gorm.DB, codigo string) error {
	if _, ok := s.facturas[codigo]; !ok {
		return apierror.ErrNoEncontrado
	}
	delete(s.facturas, codigo)
	return nil
}

func (s *stubFacturaRepo) DB() *gorm.DB { return nil }

// ─── Transaccion ─────────────────────────────────────────────────────────────

type stubTransaccionRepo struct {
	transacciones []model.Transaccion
}

func newStubTransaccionRepo() *stubTransaccionRepo { return &stubTransaccionRepo{} }

func (s *stubTransaccionRepo) Create(_ context.Context, t *model.Transaccion) error {
	s.transacciones = append(s.transacciones, *t)
	return nil
}

func (s *stubTransaccionRepo) CreateTx(_ *gorm.DB, t *model.Transaccion) error {
	s.transacciones = append(s.transacciones, *t)
	return nil
}

func (s *stubTransaccionRepo) FindByCodigo(_ context.Context, codigo string) (*model.Transaccion, error) {
	for i := range s.transacciones {
		if s.transacciones[i].Codigo == codigo {
			return &s.transacciones[i], nil
		}
	}
	return nil, apierror.ErrNoEncontrado
}

func (s *stubTransaccionRepo) List(_ context.Context) ([]model.Transaccion, error) {
	return s.transacciones, nil
}

func (s *stubTransaccionRepo) Update(_ context.Context, _ *model.Transaccion) error { return nil }
func (s *stubTransaccionRepo) Delete(_ context.Context, _ string) error             { return nil }

func (s *stubTransaccionRepo) ultima() *model.Transaccion {
	if len(s.transacciones) == 0 {
		return nil
	}
	return &s.transacciones[len(s.transacciones)-1]
}

// ─── Devolucion ──────────────────────────────────────────────────────────────

type stubDevolucionRepo struct {
	devoluciones map[string]*model.Devolucion
}

func newStubDevolucionRepo() *stubDevolucionRepo {
	return &stubDevolucionRepo{devoluciones: make(map[string]*model.Devolucion)}
}

func (s *stubDevolucionRepo) CreateTx(_ *gorm.DB, d *model.Devolucion) error {
	if _, ok := s.devoluciones[d.Codigo]; ok {
		return apierror.ErrYaExiste
	}
	copia := *d
	s.devoluciones[d.Codigo] = &copia
	return nil
}

func (s *stubDevolucionRepo) FindByCodigo(_ context.Context, codigo string) (*model.Devolucion, error) {
	d, ok := s.devoluciones[codigo]
	if !ok {
		return nil, apierror.ErrNoEncontrado
	}
	copia := *d
	return &copia, nil
}

func (s *stubDevolucionRepo) List(_ context.Context) ([]model.Devolucion, error) {
	out := make([]model.Devolucion, 0, len(s.devoluciones))
	for _, d := range s.devoluciones {
		out = append(out, *d)
	}
	return out, nil
}

func (s *stubDevolucionRepo) Update(_ context.Context, d *model.Devolucion) error {
	if _, ok := s.devoluciones[d.Codigo]; !ok {
		return apierror.ErrNoEncontrado
	}
	copia := *d
	s.devoluciones[d.Codigo] = &copia
	return nil
}

func (s *stubDevolucionRepo) Delete(_ context.Context, codigo string) error {
	if _, ok := s.devoluciones[codigo]; !ok {
		return apierror.ErrNoEncontrado
	}
	delete(s.devoluciones, codigo)
	return nil
}

func (s *stubDevolucionRepo) DB() *gorm.DB { return nil }

// ─── Usuario ─────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newStubUsuarioRepo(usuarios ...*model.Usuario) *stubUsuarioRepo {
	s := &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
	for _, u := range usuarios {
		s.usuarios[u.Documento] = u
	}
	return s
}

func (s *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := s.usuarios[u.Documento]; ok {
		return apierror.ErrYaExiste
	}
	s.usuarios[u.Documento] = u
	return nil
}

func (s *stubUsuarioRepo) FindByDocumento(_ context.Context, documento string) (*model.Usuario, error) {
	u, ok := s.usuarios[documento]
	if !ok {
		return nil, apierror.ErrNoEncontrado
	}
	copia := *u
	return &copia, nil
}

func (s *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range s.usuarios {
		if strings.EqualFold(u.Email, email) {
			copia := *u
			return &copia, nil
		}
	}
	return nil, apierror.ErrNoEncontrado
}

func (s *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(s.usuarios))
	for _, u := range s.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := s.usuarios[u.Documento]; !ok {
		return apierror.ErrNoEncontrado
	}
	copia := *u
	s.usuarios[u.Documento] = &copia
	return nil
}

func (s *stubUsuarioRepo) Delete(_ context.Context, documento string) error {
	if _, ok := s.usuarios[documento]; !ok {
		return apierror.ErrNoEncontrado
	}
	delete(s.usuarios, documento)
	return nil
}

func (s *stubUsuarioRepo) GuardarResetToken(_ context.Context, documento, token string, creado time.Time) error {
	u, ok := s.usuarios[documento]
	if !ok {
		return apierror.ErrNoEncontrado
	}
	u.ResetToken = &token
	u.ResetTokenCreado = &creado
	return nil
}

func (s *stubUsuarioRepo) FindByResetToken(_ context.Context, token string, desde time.Time) (*model.Usuario, error) {
	for _, u := range s.usuarios {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetTokenCreado != nil && u.ResetTokenCreado.After(desde) {
			copia := *u
			return &copia, nil
		}
	}
	return nil, apierror.ErrTokenInvalido
}

func (s *stubUsuarioRepo) ConsumirResetToken(_ context.Context, documento, passwordHash string) error {
	u, ok := s.usuarios[documento]
	if !ok {
		return apierror.ErrNoEncontrado
	}
	u.PasswordHash = passwordHash
	u.ResetToken = nil
	u.ResetTokenCreado = nil
	return nil
}

// ─── Email dispatcher ────────────────────────────────────────────────────────

type stubDispatcher struct {
	enviados []map[string]string
	fallar   bool
}

func (s *stubDispatcher) EnqueueEmail(_ context.Context, payload interface{}) error {
	if s.fallar {
		return errEnqueue
	}
	if m, ok := payload.(map[string]string); ok {
		s.enviados = append(s.enviados, m)
	}
	return nil
}

var errEnqueue = errors.New("cola no disponible")
