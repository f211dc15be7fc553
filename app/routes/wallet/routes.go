package wallet

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupWalletRoutes sets up the wallet and payment webhook routes
func SetupWalletRoutes(app *fiber.App) {
	// the gateway calls the webhook unauthenticated; the signature check
	// inside the handler is the auth
	app.Post("/api/payments/webhook", func(c *fiber.Ctx) error {
		return PaymentWebhookAPI(c, config.GetDB())
	})

	walletAPI := app.Group("/api/wallet")
	walletAPI.Use(auth.AuthMiddleware)

	walletAPI.Get("/", func(c *fiber.Ctx) error {
		return GetWalletAPI(c, config.GetDB())
	})

	walletAPI.Get("/transactions", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, config.GetDB())
	})

	walletAPI.Post("/deposit", func(c *fiber.Ctx) error {
		return CreateDepositAPI(c, config.GetDB())
	})
}
