package model

import (
	"time"
)

type MomentPostComment struct {
	CommentID     uint64    `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	DynamicPostID uint64    `gorm:"not null;index:idx_moment_comment_post_id" json:"dynamic_post_id"`
	UserID        uint64    `gorm:"not null;index:idx_moment_comment_user_id" json:"user_id"`
	Content       string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MomentPostComment) TableName() string {
	return "moment_post_comments"
}

type TeamPostComment struct {
	CommentID uint64    `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	PostID    uint64    `gorm:"not null;index:idx_team_comment_post_id" json:"post_id"`
	UserID    uint64    `gorm:"not null;index:idx_team_comment_user_id" json:"user_id"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (TeamPostComment) TableName() string {
	return "team_post_comments"
}
