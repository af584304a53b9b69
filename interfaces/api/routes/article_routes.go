package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
)

func SetupArticleRoutes(api fiber.Router, h *handlers.Handlers, auth *middleware.AuthMiddleware) {
	group := api.Group("/articles")

	// Public (Optional เติม isLiked ให้ viewer ที่ login)
	group.Get("/", auth.Optional(), h.ArticleHandler.List)
	group.Get("/:slug", auth.Optional(), h.ArticleHandler.Get)

	// Authenticated
	group.Post("/", auth.Protected(), h.ArticleHandler.Create)
	group.Put("/:slug", auth.Protected(), h.ArticleHandler.Update)
	group.Delete("/:slug", auth.Protected(), h.ArticleHandler.Delete)
	group.Post("/:slug/like", auth.Protected(), h.ArticleHandler.ToggleLike)

	// Comments on an article
	group.Get("/:slug/comments", auth.Optional(), h.CommentHandler.ListByArticle)
	group.Post("/:slug/comments", auth.Protected(), h.CommentHandler.Create)
}
