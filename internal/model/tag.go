package model

import "time"

type Tag struct {
	TagID     uint64    `gorm:"primaryKey;column:tag_id" json:"tag_id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}
