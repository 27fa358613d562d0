package dto

// TeamPostBaseDTO 组队帖 - 新增或修改
type TeamPostBaseDTO struct {
	PostID            uint64   `json:"post_id"`
	Title             string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Description       string   `json:"description" binding:"required" validate:"min=1,max=2000"`
	StartLocation     string   `json:"start_location" binding:"required" validate:"max=255"`
	EndLocation       string   `json:"end_location" binding:"required" validate:"max=255"`
	DurationDay       int      `json:"duration_day" validate:"min=1"`
	TeamSize          int      `json:"team_size" validate:"min=1"`
	EstimatedExpense  float64  `json:"estimated_expense"`
	GenderRequirement string   `json:"gender_requirement" validate:"omitempty,oneof=male female none"`
	PaymentMethod     string   `json:"payment_method" validate:"max=64"`
	ThemeID           uint64   `json:"theme_id"`
	Images            []string `json:"images" validate:"max=9"`
	ItineraryURL      *string  `json:"itinerary_url,omitempty"`
}

// TeamPostDTO 组队帖，列表视图只填充作者信息与图片
type TeamPostDTO struct {
	PostID            uint64  `json:"post_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	StartLocation     string  `json:"start_location"`
	EndLocation       string  `json:"end_location"`
	DurationDay       int     `json:"duration_day"`
	TeamSize          int     `json:"team_size"`
	EstimatedExpense  float64 `json:"estimated_expense"`
	GenderRequirement string  `json:"gender_requirement"`
	PaymentMethod     string  `json:"payment_method"`
	ThemeID           uint64  `json:"theme_id"`
	Status            int8    `json:"status"`
	CreatedAt         string  `json:"created_at"`

	Images       []string `json:"images"`
	ItineraryURL *string  `json:"itinerary_url,omitempty"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`

	// 详情与搜索视图额外填充
	LikeCount    int64          `json:"like_count,omitempty"`
	CommentCount int64          `json:"comment_count,omitempty"`
	JoinCount    int64          `json:"join_count,omitempty"`
	IsLiked      bool           `json:"is_liked,omitempty"`
	Members      []*UserCardDTO `json:"members,omitempty"`
}
