package services

import (
	"context"

	"github.com/google/uuid"

	"blog-api/domain/dto"
	"blog-api/domain/repositories"
)

// EngagementService คือ toggle logic ที่ใช้ร่วมกันระหว่าง article และ comment
//
// Toggle ไม่มี error path สำหรับ "like ซ้ำ" - กดซ้ำคือเอาออก
// เรียกสองครั้งติดกันต้องกลับมาสถานะเดิมเสมอ
type EngagementService interface {
	Toggle(ctx context.Context, target repositories.LikeTarget, targetID uuid.UUID, userID uuid.UUID) (*dto.LikeResponse, error)

	// ToggleArticleBySlug resolve slug เป็น article id แล้ว Toggle
	ToggleArticleBySlug(ctx context.Context, slug string, userID uuid.UUID) (*dto.LikeResponse, error)
}
