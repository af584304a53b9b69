package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/domain/dto"
	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile ดึง profile ของ user ที่ login อยู่
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	user, err := h.userService.GetProfile(ctx, userCtx.ID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// UpdateProfile แก้ไข bio/avatar/password ของตัวเอง
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.UpdateProfile(ctx, userCtx.ID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
