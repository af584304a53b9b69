package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/domain/dto"
	"blog-api/domain/services"
	"blog-api/pkg/logger"
	"blog-api/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register สมัครสมาชิกใหม่ (role เริ่มต้น: user)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// Login แลก credentials เป็น JWT
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

// Logout เพิกถอน token ปัจจุบัน
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
	if token == "" {
		return utils.UnauthorizedResponse(c, "Missing authorization header")
	}

	if err := h.userService.Logout(ctx, token); err != nil {
		logger.WarnContext(ctx, "Logout failed", "error", err)
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.LogoutResponse{Message: "Logged out"})
}
