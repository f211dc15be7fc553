package invoices

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupInvoicesRoutes sets up the invoice routes
func SetupInvoicesRoutes(app *fiber.App) {
	invoicesAPI := app.Group("/api/invoices")
	invoicesAPI.Use(auth.AuthMiddleware)
	invoicesAPI.Use(auth.RequireRole(models.RoleLandlord))

	invoicesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetInvoicesAPI(c, config.GetDB())
	})

	invoicesAPI.Post("/monthly-invoice", func(c *fiber.Ctx) error {
		return GenerateMonthlyInvoiceAPI(c, config.GetDB())
	})

	invoicesAPI.Post("/collect-money", func(c *fiber.Ctx) error {
		return CollectMoneyAPI(c, config.GetDB())
	})

	invoicesAPI.Post("/send-email", func(c *fiber.Ctx) error {
		return SendInvoiceEmailAPI(c, config.GetDB())
	})

	invoicesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetInvoiceByIDAPI(c, config.GetDB())
	})
}
