package dto

type MediaUploadResponse struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

type StorageStatsResponse struct {
	Provider string `json:"provider"`
	// Disk stats (เฉพาะ local storage, 0 สำหรับ s3)
	TotalBytes uint64 `json:"totalBytes"`
	FreeBytes  uint64 `json:"freeBytes"`
	UsedBytes  uint64 `json:"usedBytes"`
}
