package dto

import "time"

// UserDTO 用户资料更新
type UserDTO struct {
	Nickname     *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=15"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Gender       *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=200"`
	Birthday     *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RegionName   *string `json:"region_name,omitempty"`
	RegionCode   *string `json:"region_code,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	TagIDs       []uint64 `json:"tag_ids,omitempty"`
}

// UserProfileDTO 用户主页
type UserProfileDTO struct {
	UserID       uint64     `json:"user_id"`
	Username     string     `json:"username"`
	Nickname     string     `json:"nickname"`
	AvatarURL    string     `json:"avatar_url"`
	Gender       *string    `json:"gender,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	Birthday     *string    `json:"birthday,omitempty"`
	RegionName   *string    `json:"region_name,omitempty"`
	RegionCode   *string    `json:"region_code,omitempty"`
	ContactPhone *string    `json:"contact_phone,omitempty"`
	ContactEmail *string    `json:"contact_email,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`

	Tags           []*TagDTO `json:"tags"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	LikedCount     int64     `json:"liked_count"`
	IsFollowed     bool      `json:"is_followed"`
}

// UserCardDTO 用户简要信息，用于帖子/消息的作者展示
type UserCardDTO struct {
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

type UserStatusDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Status int8   `json:"status" validate:"oneof=0 1"`
}
