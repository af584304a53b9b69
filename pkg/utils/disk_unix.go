//go:build !windows

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// GetDiskInfo ดึงข้อมูลพื้นที่ disk ของ path ที่ระบุ (Unix/Linux)
func GetDiskInfo(path string) (*DiskInfo, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// ถ้า path ยังไม่ถูกสร้าง ให้ดูที่ parent directory แทน
		path = filepath.Dir(path)
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("statfs failed: %w", err)
	}

	totalBytes := stat.Blocks * uint64(stat.Bsize)
	freeBytes := stat.Bfree * uint64(stat.Bsize)
	used := totalBytes - freeBytes
	usedPercent := float64(used) / float64(totalBytes) * 100

	return &DiskInfo{
		Total:       totalBytes,
		Free:        freeBytes,
		Used:        used,
		UsedPercent: usedPercent,
	}, nil
}
