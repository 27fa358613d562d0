package model

import "time"

// Recommendation 推荐位条目，计数为入选时的快照，不随后续互动刷新
type Recommendation struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PostID       uint64    `gorm:"not null;uniqueIndex:idx_recommend_pair" json:"post_id"`
	Type         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_recommend_pair" json:"type"` // team / moment
	UserID       uint64    `gorm:"not null" json:"user_id"`
	Status       int8      `gorm:"not null;default:1" json:"status"`
	CommentCount int64     `gorm:"not null;default:0" json:"comment_count"`
	LikeCount    int64     `gorm:"not null;default:0" json:"like_count"`
	JoinCount    int64     `gorm:"not null;default:0" json:"join_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommend_posts"
}
