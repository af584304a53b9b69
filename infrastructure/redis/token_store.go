package redis

import (
	"context"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

// key prefix ของ revoked token (เก็บตาม jti จนกว่า token จะหมดอายุเอง)
const revokedTokenPrefix = "auth:revoked:"

// TokenStore เก็บ jti ของ token ที่ logout แล้ว
// เช็คทุก request จนกว่า TTL จะหมด (เท่ากับอายุที่เหลือของ token)
type TokenStore struct {
	client *Client
}

func NewTokenStore(client *Client) *TokenStore {
	return &TokenStore{client: client}
}

// RevokeToken บันทึก jti พร้อม TTL เท่าอายุที่เหลือของ token
func (s *TokenStore) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token หมดอายุแล้ว ไม่ต้องเก็บ
		return nil
	}
	return s.client.Set(ctx, revokedTokenPrefix+jti, "1", ttl)
}

// IsTokenRevoked ตรวจสอบว่า jti ถูก revoke แล้วหรือยัง
func (s *TokenStore) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.Get(ctx, revokedTokenPrefix+jti)
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
