package model

import (
	"time"
)

type Admin struct {
	AdminID   uint64    `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_admin_username" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Nickname  string    `gorm:"type:varchar(50)" json:"nickname"`
	AvatarURL string    `gorm:"type:varchar(255)" json:"avatar_url"`
	Gender    *uint8    `gorm:"type:tinyint" json:"gender"`
	Birthday  *string   `gorm:"type:varchar(20)" json:"birthday"`
	Role      string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"` // admin / superAdmin
	Status    int8      `gorm:"not null;default:1" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
