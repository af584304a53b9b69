package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/domain/dto"
	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List ดึง categories ทั้งหมด (public)
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
}

// Get ดึง category ตาม slug (public)
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	category, err := h.categoryService.GetBySlug(ctx, c.Params("slug"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Create สร้าง category ใหม่ (admin)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

// Update แก้ไข name/description (admin, slug คงที่)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(ctx, c.Params("slug"), &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Delete ลบ category (admin, ห้ามลบที่ยังมีบทความอ้างอยู่)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.categoryService.Delete(ctx, c.Params("slug")); err != nil {
		return handleServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}
