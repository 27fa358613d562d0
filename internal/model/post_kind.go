package model

// PostKind 帖子种类，封闭枚举。互动表与图片表按种类静态绑定，
// 不允许用请求参数拼接表名。
type PostKind int8

const (
	PostKindMoment PostKind = iota + 1
	PostKindTeam
)

func (k PostKind) Valid() bool {
	return k == PostKindMoment || k == PostKindTeam
}

// ApprovalType 审核流水中的种类标识
func (k PostKind) ApprovalType() string {
	if k == PostKindTeam {
		return "team"
	}
	return "moment"
}

// CommentMessageType 评论互动消息类型
func (k PostKind) CommentMessageType() string {
	if k == PostKindTeam {
		return MessageTypeTeamComment
	}
	return MessageTypeMomentComment
}

// LikeMessageType 点赞互动消息类型
func (k PostKind) LikeMessageType() string {
	if k == PostKindTeam {
		return MessageTypeTeamLike
	}
	return MessageTypeMomentLike
}

// KindFromApprovalType 从审核流水标识还原种类，未知返回 0
func KindFromApprovalType(t string) PostKind {
	switch t {
	case "team":
		return PostKindTeam
	case "moment":
		return PostKindMoment
	}
	return 0
}
