package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	JWTSecret   string
	// SwaggerFile ruta a docs/swagger.json; vacío = sin /docs.
	SwaggerFile string

	Auth      *AuthHandler
	Items     *ItemsHandler
	Dashboard *DashboardHandler
	Analytics *AnalyticsHandler
	Reports   *ReportsHandler
	Live      *LiveHandler
	// LoginLimiter throttle por IP de /api/auth/login; nil = sin límite.
	LoginLimiter *RateLimiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.SwaggerFile != "" {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
			Title:    "NETLINE Admin API",
		}))
	}

	app.Get("/health", Health(deps.ServiceName))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	login := []fiber.Handler{}
	if deps.LoginLimiter != nil {
		login = append(login, deps.LoginLimiter.Handler())
	}
	authGroup.Post("/login", append(login, deps.Auth.Login)...)

	// Rutas protegidas: JWT + solo administradores del sistema
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(string(entity.RoleSystemAdministrator)),
	)
	protected.Get("/auth/me", deps.Auth.Me)

	protected.Get("/items", deps.Items.List)

	protected.Get("/dashboard/overview", deps.Dashboard.Overview)

	analytics := protected.Group("/analytics")
	analytics.Get("/plans", deps.Analytics.Plans)
	analytics.Get("/plans/:plan/sales", deps.Analytics.PlanSales)
	analytics.Get("/monthly", deps.Analytics.Monthly)
	analytics.Get("/daily", deps.Analytics.Daily)

	reports := protected.Group("/reports")
	reports.Get("/commissions", deps.Reports.Commissions)
	reports.Get("/commissions/export", deps.Reports.Export)

	live := protected.Group("/live")
	live.Get("/connected", deps.Live.Connected)
	live.Get("/stream", deps.Live.Stream)
}
