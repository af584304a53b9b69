package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"blog-api/domain/dto"
	"blog-api/domain/ports"
	"blog-api/domain/services"
	"blog-api/pkg/config"
	"blog-api/pkg/logger"
	"blog-api/pkg/utils"
)

// นามสกุลไฟล์ภาพที่ยอมรับ (thumbnail / avatar)
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type MediaServiceImpl struct {
	storage    ports.StoragePort
	storageCfg config.StorageConfig
}

func NewMediaService(storage ports.StoragePort, storageCfg config.StorageConfig) services.MediaService {
	return &MediaServiceImpl{
		storage:    storage,
		storageCfg: storageCfg,
	}
}

func (s *MediaServiceImpl) Upload(ctx context.Context, fileName, contentType string, size int64, file io.Reader) (*dto.MediaUploadResponse, error) {
	if size > s.storageCfg.MaxUploadSize {
		return nil, services.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExtensions[ext] {
		return nil, services.ErrUnsupportedMedia
	}

	randomName, err := utils.GenerateRandomString(16)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("images/%s%s", randomName, ext)

	url, err := s.storage.UploadFile(file, path, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload media", "path", path, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Media uploaded", "path", path, "size", size)

	return &dto.MediaUploadResponse{
		URL:      url,
		Path:     path,
		FileName: fileName,
		Size:     size,
		MimeType: contentType,
	}, nil
}

// Stats ข้อมูล provider และพื้นที่ disk (disk stats มีความหมายเฉพาะ local storage)
func (s *MediaServiceImpl) Stats(ctx context.Context) (*dto.StorageStatsResponse, error) {
	stats := &dto.StorageStatsResponse{
		Provider: s.storage.GetProviderName(),
	}

	if s.storage.GetProviderName() == "local" {
		info, err := utils.GetDiskInfo(s.storageCfg.BasePath)
		if err != nil {
			logger.WarnContext(ctx, "Failed to read disk info", "path", s.storageCfg.BasePath, "error", err)
			return stats, nil
		}
		stats.TotalBytes = info.Total
		stats.FreeBytes = info.Free
		stats.UsedBytes = info.Used
	}

	return stats, nil
}
