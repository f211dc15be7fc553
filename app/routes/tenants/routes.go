package tenants

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupTenantsRoutes sets up the tenant routes
func SetupTenantsRoutes(app *fiber.App) {
	tenantsAPI := app.Group("/api/tenants")
	tenantsAPI.Use(auth.AuthMiddleware)
	tenantsAPI.Use(auth.RequireRole(models.RoleLandlord))

	tenantsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetTenantsAPI(c, config.GetDB())
	})

	tenantsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetTenantByIDAPI(c, config.GetDB())
	})

	tenantsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateTenantAPI(c, config.GetDB())
	})

	tenantsAPI.Post("/move-in", func(c *fiber.Ctx) error {
		return MoveInAPI(c, config.GetDB())
	})

	tenantsAPI.Post("/move-out", func(c *fiber.Ctx) error {
		return MoveOutAPI(c, config.GetDB())
	})
}
