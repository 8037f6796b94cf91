package router

import (
	"time"

	"biocristal/internal/config"
	"biocristal/internal/handler"
	"biocristal/internal/middleware"
	"biocristal/internal/repository"
	"biocristal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const rolAdmin = "Administrador"

// New wires repositories, services and handlers and mounts every route.
// dispatcher feeds the redis-backed email worker pool.
func New(db *gorm.DB, rdb *redis.Client, cfg *config.Config, dispatcher service.EmailDispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.RateLimiter(1000, time.Minute),
	)

	// Repositories
	productoRepo := repository.NewProductoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	devolucionRepo := repository.NewDevolucionRepository(db)
	transaccionRepo := repository.NewTransaccionRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	ubicacionRepo := repository.NewUbicacionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	importacionRepo := repository.NewImportacionRepository(db)
	exportacionRepo := repository.NewExportacionRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)

	// Services
	productoSvc := service.NewProductoService(productoRepo, rdb)
	facturaSvc := service.NewFacturaService(facturaRepo, productoRepo, transaccionRepo)
	devolucionSvc := service.NewDevolucionService(devolucionRepo, facturaRepo, productoRepo)
	authSvc := service.NewAuthService(usuarioRepo, dispatcher, cfg)

	// Handlers
	productoH := handler.NewProductoHandler(productoSvc)
	facturaH := handler.NewFacturaHandler(facturaSvc)
	devolucionH := handler.NewDevolucionHandler(devolucionSvc)
	authH := handler.NewAuthHandler(authSvc)
	precioH := handler.NewPrecioHandler(productoSvc, rdb)
	categoriaH := handler.NewCategoriaHandler(categoriaRepo)
	ubicacionH := handler.NewUbicacionHandler(ubicacionRepo)
	clienteH := handler.NewClienteHandler(clienteRepo)
	proveedorH := handler.NewProveedorHandler(proveedorRepo)
	transaccionH := handler.NewTransaccionHandler(transaccionRepo)
	importacionH := handler.NewImportacionHandler(importacionRepo)
	exportacionH := handler.NewExportacionHandler(exportacionRepo)
	mantenimientoH := handler.NewMantenimientoHandler(mantenimientoRepo)

	// ─── Rutas publicas ──────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/precio/:codigo", precioH.Consultar)

	auth := r.Group("/usuarios")
	auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/forgot-password", middleware.LoginRateLimiter(), authH.ForgotPassword)
	auth.POST("/reset-password/:token", authH.ResetPassword)

	if cfg.Env != "production" {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ─── Rutas protegidas ────────────────────────────────────────────────────
	api := r.Group("", middleware.JWTAuth(cfg.JWTSecret))

	productos := api.Group("/productos")
	productos.POST("", productoH.Crear)
	productos.GET("", productoH.Listar)
	productos.GET("/:codigo", productoH.Obtener)
	productos.PUT("/:codigo", productoH.Actualizar)
	productos.POST("/:codigo/ajuste-stock", productoH.AjustarStock)
	productos.DELETE("/:codigo", middleware.RequireRole(rolAdmin), productoH.Eliminar)

	facturas := api.Group("/facturas")
	facturas.POST("", facturaH.Crear)
	facturas.GET("", facturaH.Listar)
	facturas.GET("/:codigo", facturaH.Obtener)
	facturas.GET("/:codigo/pdf", facturaH.DescargarPDF)
	facturas.PUT("/:codigo", facturaH.Actualizar)
	facturas.DELETE("/:codigo", middleware.RequireRole(rolAdmin), facturaH.Eliminar)

	devoluciones := api.Group("/devoluciones")
	devoluciones.POST("", devolucionH.Crear)
	devoluciones.GET("", devolucionH.Listar)
	devoluciones.GET("/:codigo", devolucionH.Obtener)
	devoluciones.PUT("/:codigo", devolucionH.Actualizar)
	devoluciones.DELETE("/:codigo", middleware.RequireRole(rolAdmin), devolucionH.Eliminar)

	categorias := api.Group("/categorias")
	categorias.POST("", categoriaH.Crear)
	categorias.GET("", categoriaH.Listar)
	categorias.GET("/:nombre", categoriaH.Obtener)
	categorias.PUT("/:nombre", categoriaH.Actualizar)
	categorias.DELETE("/:nombre", middleware.RequireRole(rolAdmin), categoriaH.Eliminar)

	ubicaciones := api.Group("/ubicaciones")
	ubicaciones.POST("", ubicacionH.Crear)
	ubicaciones.GET("", ubicacionH.Listar)
	ubicaciones.GET("/:nombre", ubicacionH.Obtener)
	ubicaciones.PUT("/:nombre", ubicacionH.Actualizar)
	ubicaciones.DELETE("/:nombre", middleware.RequireRole(rolAdmin), ubicacionH.Eliminar)

	clientes := api.Group("/clientes")
	clientes.POST("", clienteH.Crear)
	clientes.GET("", clienteH.Listar)
	clientes.GET("/:documento", clienteH.Obtener)
	clientes.PUT("/:documento", clienteH.Actualizar)
	clientes.DELETE("/:documento", middleware.RequireRole(rolAdmin), clienteH.Eliminar)

	proveedores := api.Group("/proveedores")
	proveedores.POST("", proveedorH.Crear)
	proveedores.GET("", proveedorH.Listar)
	proveedores.GET("/:nit", proveedorH.Obtener)
	proveedores.PUT("/:nit", proveedorH.Actualizar)
	proveedores.DELETE("/:nit", middleware.RequireRole(rolAdmin), proveedorH.Eliminar)

	transacciones := api.Group("/transacciones")
	transacciones.POST("", transaccionH.Crear)
	transacciones.GET("", transaccionH.Listar)
	transacciones.GET("/:codigo", transaccionH.Obtener)
	transacciones.PUT("/:codigo", transaccionH.Actualizar)
	transacciones.DELETE("/:codigo", middleware.RequireRole(rolAdmin), transaccionH.Eliminar)

	importaciones := api.Group("/importaciones")
	importaciones.POST("", importacionH.Crear)
	importaciones.GET("", importacionH.Listar)
	importaciones.GET("/:codigo", importacionH.Obtener)
	importaciones.PUT("/:codigo", importacionH.Actualizar)
	importaciones.DELETE("/:codigo", middleware.RequireRole(rolAdmin), importacionH.Eliminar)

	exportaciones := api.Group("/exportaciones")
	exportaciones.POST("", exportacionH.Crear)
	exportaciones.GET("", exportacionH.Listar)
	exportaciones.GET("/:codigo", exportacionH.Obtener)
	exportaciones.PUT("/:codigo", exportacionH.Actualizar)
	exportaciones.DELETE("/:codigo", middleware.RequireRole(rolAdmin), exportacionH.Eliminar)

	mantenimientos := api.Group("/mantenimientos")
	mantenimientos.POST("", mantenimientoH.Crear)
	mantenimientos.GET("", mantenimientoH.Listar)
	mantenimientos.GET("/:codigo", mantenimientoH.Obtener)
	mantenimientos.PUT("/:codigo", mantenimientoH.Actualizar)
	mantenimientos.DELETE("/:codigo", middleware.RequireRole(rolAdmin), mantenimientoH.Eliminar)

	// User management is admin-only end to end.
	usuarios := api.Group("/usuarios", middleware.RequireRole(rolAdmin))
	usuarios.POST("", authH.CrearUsuario)
	usuarios.GET("", authH.ListarUsuarios)
	usuarios.GET("/:documento", authH.ObtenerUsuario)
	usuarios.PUT("/:documento", authH.ActualizarUsuario)
	usuarios.DELETE("/:documento", authH.EliminarUsuario)

	return r
}
