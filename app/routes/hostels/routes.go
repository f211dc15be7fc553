package hostels

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupHostelsRoutes sets up the hostel routes
func SetupHostelsRoutes(app *fiber.App) {
	hostelsAPI := app.Group("/api/hostels")
	hostelsAPI.Use(auth.AuthMiddleware)
	hostelsAPI.Use(auth.RequireRole(models.RoleLandlord))

	hostelsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetHostelsAPI(c, config.GetDB())
	})

	hostelsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetHostelByIDAPI(c, config.GetDB())
	})

	hostelsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateHostelAPI(c, config.GetDB())
	})

	hostelsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateHostelAPI(c, config.GetDB())
	})

	hostelsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteHostelAPI(c, config.GetDB())
	})

	hostelsAPI.Post("/:id/image", func(c *fiber.Ctx) error {
		return UploadHostelImageAPI(c, config.GetDB())
	})

	hostelsAPI.Post("/:id/services", func(c *fiber.Ctx) error {
		return AttachServiceAPI(c, config.GetDB())
	})

	hostelsAPI.Delete("/:id/services/:serviceId", func(c *fiber.Ctx) error {
		return DetachServiceAPI(c, config.GetDB())
	})
}
