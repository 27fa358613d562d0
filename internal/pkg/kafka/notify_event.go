package kafka

import "time"

// NotificationEvent 互动/私信落库成功后发往通知管道的事件
type NotificationEvent struct {
	ReceiverID uint64    `json:"receiver_id"`
	SenderID   uint64    `json:"sender_id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	RelatedID  uint64    `json:"related_id"`
	CreatedAt  time.Time `json:"created_at"`
}
