package consts

const (
	UserSimpleInfoKey     = "user:simple:info:"
	UserFollowingKey      = "user:following:"
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	MomentLikeKey         = "moment:like:"
	MomentCommentKey      = "moment:comment:"
	TeamLikeKey           = "team:like:"
	TeamCommentKey        = "team:comment:"
	TeamJoinKey           = "team:join:"
	NotifyChannelKey      = "notify:channel:"
	MediaTempKey          = "media:temp"
)
