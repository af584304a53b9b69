package dto

// LikeResponse ผลลัพธ์ของ like toggle
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
