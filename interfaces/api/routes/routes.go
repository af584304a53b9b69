package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	// Setup all route groups
	SetupAuthRoutes(api, h, auth)
	SetupUserRoutes(api, h, auth)
	SetupCategoryRoutes(api, h, auth)
	SetupArticleRoutes(api, h, auth)
	SetupCommentRoutes(api, h, auth)
	SetupNotificationRoutes(api, h, auth)
	SetupMediaRoutes(api, h, auth)
}
