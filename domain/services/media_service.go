package services

import (
	"context"
	"io"

	"blog-api/domain/dto"
)

type MediaService interface {
	// Upload เก็บไฟล์ (thumbnail/avatar) ลง storage แล้วคืน URL สำหรับอ้างอิง
	Upload(ctx context.Context, fileName, contentType string, size int64, file io.Reader) (*dto.MediaUploadResponse, error)

	// Stats ข้อมูล provider และ disk usage (admin)
	Stats(ctx context.Context) (*dto.StorageStatsResponse, error)
}
