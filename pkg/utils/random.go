package utils

import (
	"crypto/rand"
	"math/big"
)

// ตัดตัวอักษรที่อ่านสับสนออก (0/O, 1/l/I)
const randomCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString สร้าง string สุ่มสำหรับตั้งชื่อไฟล์
func GenerateRandomString(length int) (string, error) {
	result := make([]byte, length)
	max := big.NewInt(int64(len(randomCharset)))

	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = randomCharset[n.Int64()]
	}

	return string(result), nil
}
