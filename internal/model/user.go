package model

import (
	"time"
)

type User struct {
	UserID       uint64  `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username     string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Password     string  `gorm:"type:varchar(255);not null" json:"-"`
	Nickname     string  `gorm:"type:varchar(50)" json:"nickname"`
	AvatarURL    string  `gorm:"type:varchar(255)" json:"avatar_url"`
	Gender       *uint8  `gorm:"type:tinyint" json:"gender"`
	Bio          *string `gorm:"type:varchar(255)" json:"bio"`
	Birthday     *string `gorm:"type:varchar(20)" json:"birthday"`
	RegionName   *string `gorm:"type:varchar(100)" json:"region_name"`
	RegionCode   *string `gorm:"type:varchar(20)" json:"region_code"`
	ContactPhone *string `gorm:"type:varchar(30)" json:"contact_phone"`
	ContactEmail *string `gorm:"type:varchar(100)" json:"contact_email"`
	Status       int8    `gorm:"not null;default:1" json:"status"` // 0:禁用 1:正常
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
