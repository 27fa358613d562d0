package dto

// RegisterDTO 注册
type RegisterDTO struct {
	Username string  `json:"username" binding:"required" validate:"min=4,max=32"`
	Password string  `json:"password" binding:"required" validate:"min=6,max=20"`
	Nickname string  `json:"nickname" binding:"required" validate:"min=1,max=15"`
	Gender   *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=200"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CredentialDTO 用户名密码登录
type CredentialDTO struct {
	Username string `json:"username" binding:"required" validate:"min=4,max=32"`
	Password string `json:"password" binding:"required" validate:"min=6,max=20"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required" validate:"min=6,max=20"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=6,max=20"`
}

// TokenDTO 登录结果
type TokenDTO struct {
	Token  string `json:"token"`
	UserID uint64 `json:"user_id"`
}
