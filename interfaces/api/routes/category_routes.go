package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/categories")

	// Public
	group.Get("/", h.CategoryHandler.List)
	group.Get("/:slug", h.CategoryHandler.Get)

	// Admin only
	group.Post("/", auth.Protected(), middleware.AdminOnly(), h.CategoryHandler.Create)
	group.Put("/:slug", auth.Protected(), middleware.AdminOnly(), h.CategoryHandler.Update)
	group.Delete("/:slug", auth.Protected(), middleware.AdminOnly(), h.CategoryHandler.Delete)
}
