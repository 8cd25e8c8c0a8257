package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/analytics"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/auth"
	appinv "github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/inventory"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/reportes"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/usecase"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ContenedorUC *usecase.ContenedorUseCase
	ProductoUC   *usecase.ProductoUseCase
	RegistroUC   *usecase.RegistroUseCase
	RegisterMov  *appinv.RegisterMovimientoUseCase
	KardexUC     *appinv.KardexUseCase
	ReconcileUC  *appinv.ReconcileUseCase
	DashboardUC  *analytics.DashboardUseCase
	KardexReport *reportes.KardexReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
// Escrituras: admin y almacenero. Borrados y reconciliación: solo admin.
// Lecturas: cualquier usuario autenticado (incluye cocinero).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	escritores := RequireRole(entity.RoleAdmin, entity.RoleAlmacenero)
	soloAdmin := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup2 := protected.Group("/auth")
	authGroup2.Get("/me", authHandler.Me)

	// Contenedores
	contenedores := protected.Group("/contenedores")
	contenedorHandler := NewContenedorHandler(deps.ContenedorUC, deps.RegistroUC)
	contenedores.Post("/", escritores, contenedorHandler.Create)
	contenedores.Get("/", contenedorHandler.List)
	contenedores.Get("/:id", contenedorHandler.GetByID)
	contenedores.Put("/:id", escritores, contenedorHandler.Update)
	contenedores.Delete("/:id", soloAdmin, contenedorHandler.Delete)
	contenedores.Get("/:id/productos", contenedorHandler.ListProductos)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", escritores, productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", escritores, productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)

	// Existencias (registros producto-contenedor)
	registros := protected.Group("/registros")
	registroHandler := NewRegistroHandler(deps.RegistroUC)
	registros.Get("/:id", registroHandler.GetByID)
	registros.Put("/:id", escritores, registroHandler.Update)
	registros.Delete("/:id", soloAdmin, registroHandler.Delete)

	// Inventario: movimientos, kardex, reconciliación
	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.RegisterMov, deps.KardexUC, deps.ReconcileUC)
	invGroup.Post("/movimientos", escritores, inventarioHandler.RegisterMovimiento)
	invGroup.Get("/movimientos", inventarioHandler.ListMovimientos)
	invGroup.Get("/kardex", inventarioHandler.GetKardex)
	invGroup.Post("/reconciliar", soloAdmin, inventarioHandler.Reconciliar)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)

	// Reportes PDF
	reportesGroup := protected.Group("/reportes")
	reportesHandler := NewReportesHandler(deps.KardexReport)
	reportesGroup.Get("/kardex", reportesHandler.KardexPDF)
}
