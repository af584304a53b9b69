package ports

import "io"

// StoragePort คือ interface หลักสำหรับ media storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3/MinIO)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "thumbnails/abc123.jpg")
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
