package model

import (
	"time"
)

type MomentPost struct {
	DynamicPostID uint64    `gorm:"primaryKey;column:dynamic_post_id" json:"dynamic_post_id"`
	UserID        uint64    `gorm:"not null;index:idx_moment_user_id" json:"user_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Status        int8      `gorm:"not null;default:2" json:"status"` // 0:未通过 1:已通过 2:待审核/已下架
	CreatedAt     time.Time `json:"created_at"`
}

func (MomentPost) TableName() string {
	return "moment_posts"
}

type MomentPostImage struct {
	ImageID       uint64    `gorm:"primaryKey;column:image_id" json:"image_id"`
	DynamicPostID uint64    `gorm:"not null;index:idx_moment_image_post_id" json:"dynamic_post_id"`
	ImageURL      string    `gorm:"type:varchar(255);not null" json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MomentPostImage) TableName() string {
	return "moment_post_images"
}
