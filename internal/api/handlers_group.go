package api

import "Wayfarer/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	FollowHandler     *handler.FollowHandler
	PostHandler       *handler.PostHandler
	TeamHandler       *handler.TeamHandler
	CommentHandler    *handler.CommentHandler
	LikeHandler       *handler.LikeHandler
	MessageHandler    *handler.MessageHandler
	SearchHandler     *handler.SearchHandler
	TagHandler        *handler.TagHandler
	NoticeHandler     *handler.NoticeHandler
	AdminHandler      *handler.AdminHandler
	ModerationHandler *handler.ModerationHandler
	MediaHandler      *handler.MediaHandler
	WSHandler         *handler.WsHandler
}
