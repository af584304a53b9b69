package utils

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePagination ปรับ page/limit ให้อยู่ในช่วงที่ยอมรับ
// คืนค่า page, limit, offset
func NormalizePagination(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit, (page - 1) * limit
}

// TotalPages คำนวณจำนวนหน้าทั้งหมด
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
