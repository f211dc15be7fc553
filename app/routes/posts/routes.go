package posts

import (
	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupPostsRoutes sets up the listing routes. Browsing is public; managing
// listings requires a landlord account.
func SetupPostsRoutes(app *fiber.App) {
	postsAPI := app.Group("/api/posts")

	postsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetPostsAPI(c, config.GetDB())
	})

	requireLandlord := auth.RequireRole(models.RoleLandlord)

	postsAPI.Post("/", auth.AuthMiddleware, requireLandlord, func(c *fiber.Ctx) error {
		return CreatePostAPI(c, config.GetDB())
	})

	postsAPI.Post("/upload-image", auth.AuthMiddleware, requireLandlord, func(c *fiber.Ctx) error {
		return UploadPostImageAPI(c, config.GetDB())
	})

	postsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetPostByIDAPI(c, config.GetDB())
	})

	postsAPI.Put("/:id", auth.AuthMiddleware, requireLandlord, func(c *fiber.Ctx) error {
		return UpdatePostAPI(c, config.GetDB())
	})

	postsAPI.Delete("/:id", auth.AuthMiddleware, requireLandlord, func(c *fiber.Ctx) error {
		return DeletePostAPI(c, config.GetDB())
	})

	postsAPI.Post("/:id/push-top", auth.AuthMiddleware, requireLandlord, func(c *fiber.Ctx) error {
		return PushTopAPI(c, config.GetDB())
	})
}
