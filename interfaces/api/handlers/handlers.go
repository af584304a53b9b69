package handlers

import (
	"blog-api/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService         services.UserService
	CategoryService     services.CategoryService
	ArticleService      services.ArticleService
	CommentService      services.CommentService
	EngagementService   services.EngagementService
	NotificationService services.NotificationService
	MediaService        services.MediaService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	CategoryHandler     *CategoryHandler
	ArticleHandler      *ArticleHandler
	CommentHandler      *CommentHandler
	NotificationHandler *NotificationHandler
	MediaHandler        *MediaHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:         NewAuthHandler(services.UserService),
		UserHandler:         NewUserHandler(services.UserService),
		CategoryHandler:     NewCategoryHandler(services.CategoryService),
		ArticleHandler:      NewArticleHandler(services.ArticleService, services.EngagementService),
		CommentHandler:      NewCommentHandler(services.CommentService, services.EngagementService),
		NotificationHandler: NewNotificationHandler(services.NotificationService),
		MediaHandler:        NewMediaHandler(services.MediaService),
	}
}
