package consts

const (
	MimePrefixImage = "image"
)

// 帖子审核状态 0:未通过 1:已通过 2:待审核/已下架
const (
	PostStatusRejected int8 = 0
	PostStatusApproved int8 = 1
	PostStatusPending  int8 = 2
)

const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

const BaseURL = "base_url"
