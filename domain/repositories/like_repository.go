package repositories

import (
	"context"

	"github.com/google/uuid"
)

// LikeTarget ชนิดของสิ่งที่ like ได้
type LikeTarget string

const (
	LikeTargetArticle LikeTarget = "article"
	LikeTargetComment LikeTarget = "comment"
)

// LikeRepository จัดการ like-set membership ของทั้ง article และ comment
// การ toggle ต้องเป็น read-modify-write ใน transaction เดียว
type LikeRepository interface {
	// Toggle เพิ่ม user เข้า like-set ถ้ายังไม่อยู่ หรือเอาออกถ้าอยู่แล้ว
	// คืนสถานะใหม่ (liked) และจำนวนสมาชิกหลัง toggle
	Toggle(ctx context.Context, target LikeTarget, targetID uuid.UUID, userID uuid.UUID) (liked bool, likeCount int64, err error)
	// Counts คืน map ของ target_id -> จำนวน like
	Counts(ctx context.Context, target LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	// LikedBy คืน set ของ target_id ที่ user กด like ไว้
	LikedBy(ctx context.Context, target LikeTarget, targetIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error)
}
