package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

type CommentHandler struct {
	commentService    services.CommentService
	engagementService services.EngagementService
}

func NewCommentHandler(commentService services.CommentService, engagementService services.EngagementService) *CommentHandler {
	return &CommentHandler{
		commentService:    commentService,
		engagementService: engagementService,
	}
}

// ListByArticle ดึง top-level comments ของบทความ ใหม่สุดก่อน (public)
func (h *CommentHandler) ListByArticle(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", utils.DefaultPageSize)
	page, limit, _ = utils.NormalizePagination(page, limit)

	viewerID := utils.OptionalUserID(c)

	comments, total, err := h.commentService.ListTopLevel(ctx, c.Params("slug"), page, limit, viewerID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.PaginatedSuccessResponse(c, comments, total, page, limit)
}

// Create สร้าง comment หรือ reply บนบทความ
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	comment, err := h.commentService.Create(ctx, c.Params("slug"), userCtx.ID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.CreatedResponse(c, comment)
}

// GetReplies ดึง direct replies ของ comment (จำกัด 10 ใหม่สุดก่อน, public)
func (h *CommentHandler) GetReplies(c *fiber.Ctx) error {
	ctx := c.UserContext()

	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment id")
	}

	viewerID := utils.OptionalUserID(c)

	replies, err := h.commentService.GetReplies(ctx, commentID, viewerID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, replies)
}

// Update แก้ไข comment ของตัวเอง
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment id")
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	comment, err := h.commentService.Update(ctx, commentID, userCtx.ID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, comment)
}

// Delete ลบ comment ของตัวเอง พร้อม replies ทั้ง subtree
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment id")
	}

	if err := h.commentService.Delete(ctx, commentID, userCtx.ID); err != nil {
		return handleServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// ToggleLike สลับสถานะ like ของ comment
func (h *CommentHandler) ToggleLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment id")
	}

	result, err := h.engagementService.Toggle(ctx, repositories.LikeTargetComment, commentID, userCtx.ID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, result)
}
