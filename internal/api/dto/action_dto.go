package dto

// FollowActionDTO 关注/取关，action=1 关注，action=0 取关
type FollowActionDTO struct {
	TargetUserID uint64 `json:"target_user_id" binding:"required"`
	Action       int    `json:"action" validate:"oneof=0 1"`
}

// LikeActionDTO 点赞切换
type LikeActionDTO struct {
	PostID uint64 `json:"post_id" binding:"required"`
}
