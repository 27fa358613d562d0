package dto

// AdminDTO 管理员
type AdminDTO struct {
	AdminID   uint64 `json:"admin_id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// AdminBaseDTO 管理员 - 新增或修改
type AdminBaseDTO struct {
	Username  string `json:"username" binding:"required" validate:"min=4,max=32"`
	Password  string `json:"password" validate:"omitempty,min=6,max=20"`
	Nickname  string `json:"nickname" binding:"required" validate:"min=1,max=15"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role" validate:"omitempty,oneof=admin superAdmin"`
}

// BatchAuditDTO 批量审核
type BatchAuditDTO struct {
	PostIDs []uint64 `json:"post_ids" binding:"required" validate:"min=1"`
	Type    string   `json:"type" binding:"required" validate:"oneof=dynamic team_activity"`
	Status  int8     `json:"status" validate:"oneof=0 1 2"`
}

// BatchDeleteDTO 批量删除帖子
type BatchDeleteDTO struct {
	PostIDs []uint64 `json:"post_ids" binding:"required" validate:"min=1"`
	Type    string   `json:"type" binding:"required" validate:"oneof=dynamic team_activity"`
}

// RecommendDTO 推荐位
type RecommendDTO struct {
	PostID uint64 `json:"post_id" binding:"required"`
	Type   string `json:"type" binding:"required" validate:"oneof=dynamic team_activity"`
}

// RecommendedPostDTO 推荐位条目（前台），带帖子配图
type RecommendedPostDTO struct {
	PostID uint64   `json:"post_id"`
	Type   string   `json:"type"`
	Images []string `json:"images"`
}

// ApprovalRecordDTO 审核记录
type ApprovalRecordDTO struct {
	RecordID  uint64 `json:"record_id"`
	PostID    uint64 `json:"post_id"`
	Type      string `json:"type"`
	Status    int8   `json:"status"`
	AdminID   uint64 `json:"admin_id"`
	AdminName string `json:"admin_name"`
	CreatedAt string `json:"created_at"`
}

// NoticeBaseDTO 系统公告 - 新增或修改
type NoticeBaseDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content string `json:"content" binding:"required" validate:"min=1,max=5000"`
}

// NoticeDTO 系统公告
type NoticeDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`

	// Admin
	AdminID       uint64 `json:"admin_id"`
	AdminNickname string `json:"admin_nickname"`
}

// BroadcastDTO 管理员站内广播
type BroadcastDTO struct {
	Content     string   `json:"content" binding:"required" validate:"min=1,max=1000"`
	ReceiverIDs []uint64 `json:"receiver_ids" binding:"required" validate:"min=1"`
}
