package model

import (
	"time"
)

type MomentPostLike struct {
	LikeID        uint64    `gorm:"primaryKey;column:like_id" json:"like_id"`
	DynamicPostID uint64    `gorm:"not null;uniqueIndex:idx_moment_like_pair" json:"dynamic_post_id"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_moment_like_pair" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MomentPostLike) TableName() string {
	return "moment_post_likes"
}

type TeamPostLike struct {
	LikeID    uint64    `gorm:"primaryKey;column:like_id" json:"like_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_team_like_pair" json:"post_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_team_like_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (TeamPostLike) TableName() string {
	return "team_post_likes"
}
