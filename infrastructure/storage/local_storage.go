package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"blog-api/domain/ports"
)

// LocalStorage implements StoragePort สำหรับเก็บไฟล์ใน local filesystem
type LocalStorage struct {
	basePath string // เส้นทางหลักที่เก็บไฟล์ (เช่น ./uploads)
	baseURL  string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/files)
}

type LocalStorageConfig struct {
	BasePath string // ./uploads
	BaseURL  string // http://localhost:8080/files
}

// NewLocalStorage สร้าง LocalStorage instance
func NewLocalStorage(config LocalStorageConfig) (ports.StoragePort, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

// UploadFile อัปโหลดไฟล์ไปยัง local filesystem
func (l *LocalStorage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	path = strings.ReplaceAll(path, "\\", "/")
	fullPath := filepath.Join(l.basePath, path)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// ลบไฟล์ที่เขียนไม่สำเร็จ
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.GetFileURL(path), nil
}

// DeleteFile ลบไฟล์จาก local filesystem
func (l *LocalStorage) DeleteFile(path string) error {
	path = strings.ReplaceAll(path, "\\", "/")
	fullPath := filepath.Join(l.basePath, path)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		// ไฟล์ไม่มีอยู่แล้ว ถือว่าสำเร็จ
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetFileURL สร้าง URL สำหรับเข้าถึงไฟล์
func (l *LocalStorage) GetFileURL(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return l.baseURL + path
}

// GetProviderName ชื่อ provider
func (l *LocalStorage) GetProviderName() string {
	return "local"
}

// BasePath เส้นทางหลักที่เก็บไฟล์ (สำหรับ disk stats)
func (l *LocalStorage) BasePath() string {
	return l.basePath
}
