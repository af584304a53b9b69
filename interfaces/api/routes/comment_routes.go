package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupCommentRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/comments")

	// Public
	group.Get("/:id/replies", auth.Optional(), h.CommentHandler.GetReplies)

	// Authenticated
	group.Put("/:id", auth.Protected(), h.CommentHandler.Update)
	group.Delete("/:id", auth.Protected(), h.CommentHandler.Delete)
	group.Post("/:id/like", auth.Protected(), h.CommentHandler.ToggleLike)
}
