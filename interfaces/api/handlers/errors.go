package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

// handleServiceError map domain errors เป็น HTTP responses
func handleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, services.ErrSlugTaken):
		return utils.ConflictResponse(c, "Slug already taken")
	case errors.Is(err, services.ErrCategoryInUse):
		return utils.ConflictResponse(c, "Category is still referenced by articles")
	case errors.Is(err, services.ErrDuplicateReply):
		return utils.ConflictResponse(c, "You already replied to this comment")
	case errors.Is(err, services.ErrThreadTooDeep):
		return utils.BadRequestResponse(c, "Comment thread is too deep")
	case errors.Is(err, services.ErrTooManyCategories):
		return utils.BadRequestResponse(c, "Article allows a single category")
	case errors.Is(err, services.ErrNotPublisher):
		return utils.ForbiddenResponse(c, "Account cannot publish articles")
	case errors.Is(err, services.ErrEmailTaken):
		return utils.ConflictResponse(c, "Email already exists")
	case errors.Is(err, services.ErrUsernameTaken):
		return utils.ConflictResponse(c, "Username already exists")
	case errors.Is(err, services.ErrInvalidLogin):
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	case errors.Is(err, services.ErrAccountDisabled):
		return utils.ForbiddenResponse(c, "Account is disabled")
	case errors.Is(err, services.ErrFileTooLarge):
		return utils.BadRequestResponse(c, "File exceeds the upload size limit")
	case errors.Is(err, services.ErrUnsupportedMedia):
		return utils.BadRequestResponse(c, "Unsupported media type")
	case errors.Is(err, utils.ErrExpiredToken),
		errors.Is(err, utils.ErrInvalidToken),
		errors.Is(err, utils.ErrMissingToken):
		return utils.UnauthorizedResponse(c, "Invalid token")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
