package main

import (
	"log"
	"os"

	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/hostels"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/invoices"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/memberships"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/posts"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/readings"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/rooms"
	servicesroutes "github.com/TungTV17/HostelFinder-sub000/app/routes/services"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/tenants"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/wallet"
	"github.com/TungTV17/HostelFinder-sub000/app/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler renders every error as the standard JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Load invoice email templates
	if err := services.InitEmailTemplates("./app/templates"); err != nil {
		log.Printf("Warning: failed to load email templates: %v", err)
	}

	// Connect to object storage for listing and hostel images
	if err := services.InitStorage(); err != nil {
		log.Printf("Warning: object storage unavailable, uploads will fail: %v", err)
	}

	// Start background scheduler for invoice reminders
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup hostel routes
	hostels.SetupHostelsRoutes(app)

	// Setup room routes
	rooms.SetupRoomsRoutes(app)

	// Setup tenant routes
	tenants.SetupTenantsRoutes(app)

	// Setup service catalog and tariff routes
	servicesroutes.SetupServicesRoutes(app)

	// Setup meter reading routes
	readings.SetupReadingsRoutes(app)

	// Setup invoice routes
	invoices.SetupInvoicesRoutes(app)

	// Setup wallet and payment webhook routes
	wallet.SetupWalletRoutes(app)

	// Setup membership routes
	memberships.SetupMembershipsRoutes(app)

	// Setup public listing routes
	posts.SetupPostsRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
