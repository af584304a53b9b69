package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupNotificationRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/notifications")

	group.Get("/", auth.Protected(), h.NotificationHandler.List)
	group.Patch("/read-all", auth.Protected(), h.NotificationHandler.MarkAllRead)
	group.Patch("/:id/read", auth.Protected(), h.NotificationHandler.MarkRead)
}
