package model

import (
	"time"
)

// 消息类型，对外协议字段，取值不可变更
const (
	MessageTypePrivate       = "private_message"
	MessageTypeMomentComment = "dynamic_post_comment"
	MessageTypeMomentLike    = "dynamic_post_like"
	MessageTypeTeamComment   = "team_activity_post_comment"
	MessageTypeTeamLike      = "team_activity_post_like"
	MessageTypeAdmin         = "admin_notification"
	MessageTypeFollow        = "follow_notification"
)

const (
	SenderTypeUser  = "user"
	SenderTypeAdmin = "admin"
)

type Message struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	SenderType   string    `gorm:"type:varchar(10);not null" json:"sender_type"`
	SenderID     uint64    `gorm:"not null;index:idx_message_sender" json:"sender_id"`
	ReceiverType string    `gorm:"type:varchar(10);not null" json:"receiver_type"`
	ReceiverID   uint64    `gorm:"not null;index:idx_message_receiver" json:"receiver_id"`
	Content      string    `gorm:"type:text" json:"content"`
	Type         string    `gorm:"type:varchar(40);not null;index:idx_message_type" json:"type"`
	RelatedID    *uint64   `gorm:"column:related_id" json:"related_id"`
	CommentID    *uint64   `gorm:"column:comment_id" json:"comment_id"`
	LikeID       *uint64   `gorm:"column:like_id" json:"like_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// IsInteractiveType 点赞/评论/关注一类的互动消息
func IsInteractiveType(t string) bool {
	switch t {
	case MessageTypeMomentComment, MessageTypeMomentLike,
		MessageTypeTeamComment, MessageTypeTeamLike, MessageTypeFollow:
		return true
	}
	return false
}
