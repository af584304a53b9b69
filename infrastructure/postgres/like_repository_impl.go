package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/domain/repositories"
)

// join table ของแต่ละ like target
type likeTable struct {
	name      string // ชื่อตาราง
	targetCol string // column ที่ชี้ไปยัง target
}

var likeTables = map[repositories.LikeTarget]likeTable{
	repositories.LikeTargetArticle: {name: "article_likes", targetCol: "article_id"},
	repositories.LikeTargetComment: {name: "comment_likes", targetCol: "comment_id"},
}

type LikeRepositoryImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &LikeRepositoryImpl{db: db}
}

// Toggle เป็น read-modify-write ใน transaction เดียว
// กด like ซ้ำสองครั้งต้องกลับมาที่สถานะเดิมเสมอ
func (r *LikeRepositoryImpl) Toggle(ctx context.Context, target repositories.LikeTarget, targetID uuid.UUID, userID uuid.UUID) (bool, int64, error) {
	table, ok := likeTables[target]
	if !ok {
		return false, 0, fmt.Errorf("unknown like target: %s", target)
	}

	var liked bool
	var likeCount int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(table.name).
			Where(table.targetCol+" = ? AND user_id = ?", targetID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			del := fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND user_id = ?", table.name, table.targetCol)
			if err := tx.Exec(del, targetID, userID).Error; err != nil {
				return err
			}
			liked = false
		} else {
			ins := fmt.Sprintf("INSERT INTO %s (%s, user_id) VALUES (?, ?)", table.name, table.targetCol)
			if err := tx.Exec(ins, targetID, userID).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Table(table.name).
			Where(table.targetCol+" = ?", targetID).
			Count(&likeCount).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, likeCount, nil
}

func (r *LikeRepositoryImpl) Counts(ctx context.Context, target repositories.LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	table, ok := likeTables[target]
	if !ok {
		return nil, fmt.Errorf("unknown like target: %s", target)
	}

	type row struct {
		TargetID uuid.UUID `gorm:"column:target_id"`
		Total    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table(table.name).
		Select(table.targetCol + " AS target_id, COUNT(*) AS total").
		Where(table.targetCol+" IN ?", targetIDs).
		Group(table.targetCol).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.TargetID] = rw.Total
	}
	return counts, nil
}

func (r *LikeRepositoryImpl) LikedBy(ctx context.Context, target repositories.LikeTarget, targetIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return liked, nil
	}

	table, ok := likeTables[target]
	if !ok {
		return nil, fmt.Errorf("unknown like target: %s", target)
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table(table.name).
		Where(table.targetCol+" IN ? AND user_id = ?", targetIDs, userID).
		Pluck(table.targetCol, &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
