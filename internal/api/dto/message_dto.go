package dto

// SendMessageDTO 发送私信
type SendMessageDTO struct {
	ReceiverID uint64 `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// MessageDTO 消息行
type MessageDTO struct {
	MessageID    uint64  `json:"message_id"`
	SenderType   string  `json:"sender_type"`
	SenderID     uint64  `json:"sender_id"`
	ReceiverType string  `json:"receiver_type"`
	ReceiverID   uint64  `json:"receiver_id"`
	Content      string  `json:"content"`
	Type         string  `json:"type"`
	RelatedID    *uint64 `json:"related_id,omitempty"`
	CommentID    *uint64 `json:"comment_id,omitempty"`
	LikeID       *uint64 `json:"like_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// PrivateMessagesDTO 私信按方向拆分
type PrivateMessagesDTO struct {
	Send     []*MessageDTO `json:"send"`
	Received []*MessageDTO `json:"received"`
}

// NotificationDTO 消息中心首页聚合结果
type NotificationDTO struct {
	Messages           *PrivateMessagesDTO `json:"messages"`
	AdminNotifications []*MessageDTO       `json:"admin_notifications"`
	Interactive        []*MessageDTO       `json:"interactive"`
}

// AdminMessageDTO 后台消息行，带双方昵称
type AdminMessageDTO struct {
	MessageDTO

	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
}

// InteractiveMessageDTO 互动通知，附带发送者资料与关联帖子的封面图
type InteractiveMessageDTO struct {
	MessageDTO

	Sender   *UserCardDTO `json:"sender,omitempty"`
	PostImage string      `json:"post_image,omitempty"`
}
