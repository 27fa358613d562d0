package dto

// TagDTO 用户兴趣标签
type TagDTO struct {
	TagID uint64 `json:"tag_id"`
	Name  string `json:"name"`
}

type TagBaseDTO struct {
	Name string `json:"name" binding:"required" validate:"min=1,max=32"`
}

// ThemeDTO 组队主题
type ThemeDTO struct {
	ThemeID uint64 `json:"theme_id"`
	Name    string `json:"name"`
}

type ThemeBaseDTO struct {
	Name string `json:"name" binding:"required" validate:"min=1,max=32"`
}
