package memberships

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupMembershipsRoutes sets up the membership routes
func SetupMembershipsRoutes(app *fiber.App) {
	membershipsAPI := app.Group("/api/memberships")

	membershipsAPI.Get("/plans", GetPlansAPI)

	membershipsAPI.Get("/me", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetMyMembershipAPI(c, config.GetDB())
	})

	membershipsAPI.Post("/purchase", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return PurchaseMembershipAPI(c, config.GetDB())
	})
}
