package model

import "time"

// 审核流水，只追加不修改
type ApprovalRecord struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_approval_post_id" json:"post_id"`
	AdminID   uint64    `gorm:"not null;index:idx_approval_admin_id" json:"admin_id"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"` // team / moment
	Status    int8      `gorm:"not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (ApprovalRecord) TableName() string {
	return "approval_records"
}
