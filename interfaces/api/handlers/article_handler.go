package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/domain/dto"
	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

type ArticleHandler struct {
	articleService    services.ArticleService
	engagementService services.EngagementService
}

func NewArticleHandler(articleService services.ArticleService, engagementService services.EngagementService) *ArticleHandler {
	return &ArticleHandler{
		articleService:    articleService,
		engagementService: engagementService,
	}
}

// List ดึงบทความใหม่สุดก่อน filter ด้วย ?category= และ ?q= (public)
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var filter dto.ArticleFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	viewerID := utils.OptionalUserID(c)

	items, total, err := h.articleService.List(ctx, &filter, viewerID)
	if err != nil {
		return handleServiceError(c, err)
	}

	page, limit, _ := utils.NormalizePagination(filter.Page, filter.Limit)
	return utils.PaginatedSuccessResponse(c, items, total, page, limit)
}

// Get ดึง detail ตาม slug เพิ่ม view counter ทุกครั้ง (public)
func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	viewerID := utils.OptionalUserID(c)

	detail, err := h.articleService.Get(ctx, c.Params("slug"), viewerID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, detail)
}

// Create สร้างบทความใหม่ (author/admin เท่านั้น)
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	detail, err := h.articleService.Create(ctx, userCtx.ID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.CreatedResponse(c, detail)
}

// Update แก้ไขบทความของตัวเอง (คนอื่นได้ 404 เสมอ)
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	detail, err := h.articleService.Update(ctx, c.Params("slug"), userCtx.ID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, detail)
}

// Delete ลบบทความของตัวเอง cascade ไปยัง comments
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	if err := h.articleService.Delete(ctx, c.Params("slug"), userCtx.ID); err != nil {
		return handleServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// ToggleLike สลับสถานะ like ของบทความ
func (h *ArticleHandler) ToggleLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	result, err := h.engagementService.ToggleArticleBySlug(ctx, c.Params("slug"), userCtx.ID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, result)
}
