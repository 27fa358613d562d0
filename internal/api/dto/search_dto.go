package dto

// UserSearchDTO 用户搜索结果
type UserSearchDTO struct {
	UserID     uint64  `json:"user_id"`
	Username   string  `json:"username"`
	Nickname   string  `json:"nickname"`
	AvatarURL  string  `json:"avatar_url"`
	Bio        *string `json:"bio,omitempty"`
	RegionName *string `json:"region_name,omitempty"`
	IsFollowed bool    `json:"is_followed"`
}

// SearchResultDTO 三路搜索的并列结果
type SearchResultDTO struct {
	MomentPosts []*MomentPostDTO `json:"dynamic_posts"`
	TeamPosts   []*TeamPostDTO   `json:"team_activity_posts"`
	Users       []*UserSearchDTO `json:"users"`
}
