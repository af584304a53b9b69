package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List ดึง notifications ของตัวเอง ใหม่สุดก่อน
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", utils.DefaultPageSize)
	page, limit, _ = utils.NormalizePagination(page, limit)

	notifications, total, err := h.notificationService.List(ctx, userCtx.ID, page, limit)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.PaginatedSuccessResponse(c, notifications, total, page, limit)
}

// MarkRead ทำเครื่องหมายว่าอ่านแล้ว (เฉพาะของตัวเอง)
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(ctx, id, userCtx.ID); err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Notification marked as read"})
}

// MarkAllRead ทำเครื่องหมายว่าอ่านแล้วทั้งหมด
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	if err := h.notificationService.MarkAllRead(ctx, userCtx.ID); err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "All notifications marked as read"})
}
