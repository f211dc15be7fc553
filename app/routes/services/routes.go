package services

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupServicesRoutes sets up the service catalog and tariff routes
func SetupServicesRoutes(app *fiber.App) {
	servicesAPI := app.Group("/api/services")
	servicesAPI.Use(auth.AuthMiddleware)

	servicesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetServicesAPI(c, config.GetDB())
	})

	// catalog management is admin-only
	servicesAPI.Post("/", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateServiceAPI(c, config.GetDB())
	})

	servicesAPI.Put("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UpdateServiceAPI(c, config.GetDB())
	})

	servicesAPI.Delete("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteServiceAPI(c, config.GetDB())
	})

	tariffsAPI := app.Group("/api/tariffs")
	tariffsAPI.Use(auth.AuthMiddleware)
	tariffsAPI.Use(auth.RequireRole(models.RoleLandlord))

	tariffsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetTariffsAPI(c, config.GetDB())
	})

	tariffsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateTariffAPI(c, config.GetDB())
	})
}
