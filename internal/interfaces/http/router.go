package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/pkg/jwt"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	JWTSecret  string
	Logger     *logger.Logger
	// Gatherer fuente de /metrics; nil no expone el endpoint.
	Gatherer prometheus.Gatherer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Logger)

	// Lectura (público)
	categories.Get("/", categoryHandler.Search)
	categories.Get("/:id", categoryHandler.GetByID)

	// Escritura (Bearer Token + rol admin)
	admin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin)}
	categories.Post("/", append(admin, categoryHandler.Create)...)
	categories.Put("/:id", append(admin, categoryHandler.Update)...)
	categories.Patch("/:id/activate", append(admin, categoryHandler.Activate)...)
	categories.Patch("/:id/deactivate", append(admin, categoryHandler.Deactivate)...)
	categories.Delete("/:id", append(admin, categoryHandler.Delete)...)
}
