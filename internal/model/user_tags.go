package model

type UserTag struct {
	UserID uint64 `gorm:"primaryKey" json:"user_id"`
	TagID  uint64 `gorm:"primaryKey;index:idx_user_tag_tag_id" json:"tag_id"`
}

func (UserTag) TableName() string {
	return "user_tags"
}
