package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/pkg/config"
	"github.com/jhoicas/softcon-wm/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Backend    BackendFactory
	Directorio ports.Directorio
	PDF        ports.ReportePDF
	Session    config.SessionConfig
	// Metrics opcional; con nil no se observa ni se expone /metrics.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Router registra las vistas y la API del portal.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		if deps.Gatherer != nil {
			app.Get(RutaMetricas, MetricsHandler(deps.Gatherer))
		}
	}
	app.Use(SessionMiddleware(deps.Session))

	// Vistas públicas
	app.Get("/landing", Vista(deps.AuthUC, "landing"))
	app.Get("/login", Vista(deps.AuthUC, "login"))
	app.Get("/register", Vista(deps.AuthUC, "register"))

	// Vistas con sesión; /admin/usuarios exige rol admin
	app.Get("/", RequireSession(), Vista(deps.AuthUC, "dashboard"))
	app.Get("/proyectos", RequireSession(), Vista(deps.AuthUC, "proyectos"))
	app.Get("/inventarios", RequireSession(), Vista(deps.AuthUC, "inventarios"))
	app.Get("/finanzas-personales", RequireSession(), Vista(deps.AuthUC, "finanzas-personales"))
	app.Get("/admin/usuarios", RequireRole(entity.RoleAdmin), Vista(deps.AuthUC, "admin-usuarios"))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/supabase/login", authHandler.LoginSupabase)
	authGroup.Post("/supabase/register", authHandler.RegisterSupabase)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/sesion", authHandler.Sesion)

	// Rutas protegidas (requieren sesión)
	protected := api.Group("/", RequireSession())

	proyectoHandler := NewProyectoHandler(deps.Backend, deps.PDF)
	proyectos := protected.Group("/proyectos")
	proyectos.Get("/", proyectoHandler.List)
	proyectos.Post("/", proyectoHandler.Create)
	proyectos.Get("/:id", proyectoHandler.GetByID)
	proyectos.Get("/:id/finanzas", proyectoHandler.EstadoResultado)
	proyectos.Get("/:id/finanzas/pdf", proyectoHandler.EstadoResultadoPDF)
	proyectos.Get("/:id/consumo", proyectoHandler.Consumo)
	proyectos.Get("/:id/fotos", proyectoHandler.Fotos)
	proyectos.Post("/:id/fotos", proyectoHandler.SubirFoto)
	proyectos.Get("/:id/evidencias", proyectoHandler.Evidencias)

	inventarioHandler := NewInventarioHandler(deps.Backend)
	proyectos.Get("/:id/inventario", inventarioHandler.List)
	proyectos.Post("/:id/orden-compra", inventarioHandler.CrearOrden)

	finanzasHandler := NewFinanzasHandler(deps.Backend)
	fin := protected.Group("/finanzas")
	fin.Get("/personales", finanzasHandler.Resumen)
	fin.Post("/gastos", finanzasHandler.RegistrarGasto)
	fin.Get("/balance/:usuario_id", finanzasHandler.Balance)
	fin.Post("/cobros", finanzasHandler.RegistrarCobro)

	protected.Get("/inventario/resumen", inventarioHandler.Resumen)
	protected.Post("/importar/maestro", inventarioHandler.ImportarMaestro)
	compras := protected.Group("/compras")
	compras.Get("/pendientes", inventarioHandler.Pendientes)
	compras.Put("/orden/:id/estado", inventarioHandler.ActualizarEstado)

	campoHandler := NewCampoHandler(deps.Backend)
	protected.Post("/campo/asistencia", campoHandler.Asistencia)
	protected.Post("/campo/avance", campoHandler.Avance)

	if deps.Directorio != nil {
		dashboardHandler := NewDashboardHandler(deps.Directorio)
		protected.Get("/dashboard/activos", dashboardHandler.Activos)
		protected.Get("/dashboard/proyectos", dashboardHandler.Proyectos)
	}

	// Admin (rol admin)
	adminHandler := NewAdminHandler(deps.Backend)
	admin := api.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/usuarios/pendientes", adminHandler.Pendientes)
	admin.Post("/usuarios/:id/aprobar", adminHandler.Aprobar)
	admin.Post("/usuarios/:id/rol", adminHandler.AsignarRol)
	admin.Post("/usuarios/:id/activo", adminHandler.ActualizarActivo)
}
