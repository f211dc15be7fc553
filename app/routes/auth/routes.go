package auth

import (
	"strings"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the auth routes
func SetupAuthRoutes(app *fiber.App) {
	authAPI := app.Group("/api/auth")

	authAPI.Post("/register", RegisterAPI)
	authAPI.Post("/login", LoginAPI)
	authAPI.Post("/logout", LogoutAPI)

	authAPI.Post("/change-password", AuthMiddleware, ChangePasswordAPI)
	authAPI.Get("/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware validates the JWT from the cookie or Authorization header
// and loads the caller's identity into locals.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	// Validate JWT token
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_roles", claims.Roles)

	return c.Next()
}

// RequireRole returns a middleware that rejects callers missing the role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals("user_roles").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "Access denied"})
		}
		for _, r := range roles {
			if r == role || r == models.RoleAdmin {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Access denied"})
	}
}
