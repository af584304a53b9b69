package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-api/domain/services"
	"blog-api/pkg/utils"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// Upload รับ multipart file (thumbnail/avatar) แล้วคืน URL
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Cannot read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.mediaService.Upload(ctx, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.CreatedResponse(c, result)
}

// Stats ข้อมูล storage provider และ disk usage (admin)
func (h *MediaHandler) Stats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.mediaService.Stats(ctx)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, stats)
}
