package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupMediaRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/media")

	group.Post("/upload", auth.Protected(), h.MediaHandler.Upload)
	group.Get("/stats", auth.Protected(), middleware.AdminOnly(), h.MediaHandler.Stats)
}
