package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/users")

	group.Get("/me", auth.Protected(), h.UserHandler.GetProfile)
	group.Put("/me", auth.Protected(), h.UserHandler.UpdateProfile)
}
