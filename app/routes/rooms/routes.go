package rooms

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupRoomsRoutes sets up the room routes
func SetupRoomsRoutes(app *fiber.App) {
	roomsAPI := app.Group("/api/rooms")
	roomsAPI.Use(auth.AuthMiddleware)
	roomsAPI.Use(auth.RequireRole(models.RoleLandlord))

	roomsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetRoomsAPI(c, config.GetDB())
	})

	roomsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetRoomByIDAPI(c, config.GetDB())
	})

	roomsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateRoomAPI(c, config.GetDB())
	})

	roomsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateRoomAPI(c, config.GetDB())
	})

	roomsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteRoomAPI(c, config.GetDB())
	})
}
