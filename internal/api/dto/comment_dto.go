package dto

// CommentBaseDTO 评论 - 新增
type CommentBaseDTO struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required" validate:"min=1,max=500"`
}

// CommentDTO 评论
type CommentDTO struct {
	CommentID uint64 `json:"comment_id"`
	PostID    uint64 `json:"post_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
