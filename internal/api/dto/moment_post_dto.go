package dto

// MomentPostBaseDTO 动态帖 - 新增或修改
type MomentPostBaseDTO struct {
	DynamicPostID uint64   `json:"dynamic_post_id"`
	Content       string   `json:"content" binding:"required" validate:"min=1,max=2000"`
	Images        []string `json:"images" validate:"max=9"`
}

// MomentPostDTO 动态帖
type MomentPostDTO struct {
	DynamicPostID uint64 `json:"dynamic_post_id"`
	Content       string `json:"content"`
	Status        int8   `json:"status"`
	CreatedAt     string `json:"created_at"`

	Images []string `json:"images"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`

	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	IsLiked      bool  `json:"is_liked"`
	IsFollowed   bool  `json:"is_followed"`
}
