package readings

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupReadingsRoutes sets up the meter reading routes
func SetupReadingsRoutes(app *fiber.App) {
	readingsAPI := app.Group("/api/readings")
	readingsAPI.Use(auth.AuthMiddleware)
	readingsAPI.Use(auth.RequireRole(models.RoleLandlord))

	readingsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetReadingsAPI(c, config.GetDB())
	})

	readingsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateReadingAPI(c, config.GetDB())
	})

	readingsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateReadingAPI(c, config.GetDB())
	})
}
