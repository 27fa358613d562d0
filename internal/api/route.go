package api

import (
	"Wayfarer/internal/api/middleware"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authOptGroup := userGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:user_id/profile", group.UserHandler.GetUserProfile)
				authOptGroup.GET("/:user_id/posts/dynamic", group.UserHandler.GetUserMomentPosts)
				authOptGroup.GET("/:user_id/posts/team_activity", group.UserHandler.GetUserTeamPosts)
				authOptGroup.GET("/:user_id/followings", group.FollowHandler.GetFollowings)
				authOptGroup.GET("/:user_id/followers", group.FollowHandler.GetFollowers)
			}

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/profile", group.UserHandler.GetMyProfile)
				authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
				authGroup.POST("/follow", group.FollowHandler.FollowOrUnfollow)
				authGroup.GET("/likes", group.UserHandler.GetLikedPosts)
				authGroup.GET("/teams", group.UserHandler.GetJoinedTeams)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/dynamic", group.PostHandler.GetFeed)
				authOptGroup.GET("/dynamic/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/team_activity", group.TeamHandler.GetFeed)
				authOptGroup.GET("/team_activity/:post_id", group.TeamHandler.GetPost)
				authOptGroup.GET("/search", group.SearchHandler.Search)
				authOptGroup.GET("/recommendations", group.ModerationHandler.ListRecommendations)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/dynamic", group.PostHandler.CreatePost)
				authGroup.PUT("/dynamic", group.PostHandler.UpdatePost)
				authGroup.DELETE("/dynamic/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/team_activity", group.TeamHandler.CreatePost)
				authGroup.PUT("/team_activity", group.TeamHandler.UpdatePost)
				authGroup.DELETE("/team_activity/:post_id", group.TeamHandler.DeletePost)
				authGroup.POST("/team_activity/:post_id/join", group.TeamHandler.JoinTeam)
				authGroup.DELETE("/team_activity/:post_id/join", group.TeamHandler.LeaveTeam)
				authGroup.GET("/team_activity/:post_id/members", group.TeamHandler.GetMembers)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/:kind/:post_id", group.CommentHandler.GetComments)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:kind", group.CommentHandler.CreateComment)
				authGroup.DELETE("/:kind/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		likeGroup := apiGroup.Group("/likes")
		likeGroup.Use(middleware.AuthMiddleware())
		{
			likeGroup.POST("/:kind/:post_id", group.LikeHandler.ToggleLike)
		}

		messageGroup := apiGroup.Group("/messages")
		{
			messageGroup.GET("/ws", group.WSHandler.Connect)

			authGroup := messageGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/notification", group.MessageHandler.GetNotification)
				authGroup.GET("/interactive", group.MessageHandler.GetInteractiveNotifications)
				authGroup.GET("/chat/:user_id", group.MessageHandler.GetMessagesBetweenUsers)
				authGroup.GET("/admin", group.MessageHandler.GetAdminNotifications)
				authGroup.POST("/send", group.MessageHandler.SendMessage)
			}
		}

		metaGroup := apiGroup.Group("/meta")
		{
			metaGroup.GET("/themes", group.TeamHandler.ListThemes)
			metaGroup.GET("/tags", group.TagHandler.ListTags)
		}

		noticeGroup := apiGroup.Group("/notices")
		{
			noticeGroup.GET("", group.NoticeHandler.PageNotices)
			noticeGroup.GET("/:notice_id", group.NoticeHandler.GetNotice)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
			mediaGroup.POST("/images/dynamic/delete", group.PostHandler.DeleteImages)
			mediaGroup.POST("/images/team_activity/delete", group.TeamHandler.DeleteImages)
			mediaGroup.POST("/itineraries/delete", group.TeamHandler.DeleteItineraries)
		}

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/login", group.AdminHandler.Login)

			// 需要登录 & 拥有 admin 角色
			authGroup := adminGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				authGroup.POST("/logout", group.AdminHandler.Logout)
				authGroup.GET("/profile", group.AdminHandler.GetProfile)

				authGroup.GET("/users", group.AdminHandler.PageUsers)
				authGroup.POST("/users/:user_id/ban", group.AdminHandler.BanUser)
				authGroup.POST("/users/:user_id/unban", group.AdminHandler.UnBanUser)
				authGroup.POST("/broadcast", group.AdminHandler.Broadcast)

				authGroup.GET("/posts/:kind", group.ModerationHandler.PagePosts)
				authGroup.POST("/posts/audit", group.ModerationHandler.BatchAudit)
				authGroup.POST("/posts/delete", group.ModerationHandler.BatchDelete)
				authGroup.GET("/approvals", group.ModerationHandler.PageApprovalRecords)

				authGroup.GET("/comments/:kind", group.ModerationHandler.PageComments)
				authGroup.DELETE("/comments/:kind/:comment_id", group.ModerationHandler.RemoveComment)
				authGroup.GET("/messages", group.AdminHandler.PageMessages)
				authGroup.POST("/messages/delete", group.AdminHandler.DeleteMessages)

				authGroup.POST("/recommendations", group.ModerationHandler.Recommend)
				authGroup.DELETE("/recommendations", group.ModerationHandler.CancelRecommend)
				authGroup.GET("/recommendations", group.ModerationHandler.PageRecommendations)

				authGroup.POST("/notices", group.NoticeHandler.CreateNotice)
				authGroup.PUT("/notices/:notice_id", group.NoticeHandler.UpdateNotice)
				authGroup.DELETE("/notices/:notice_id", group.NoticeHandler.DeleteNotice)

				authGroup.POST("/tags", group.TagHandler.CreateTag)
				authGroup.PUT("/tags/:tag_id", group.TagHandler.UpdateTag)
				authGroup.DELETE("/tags/:tag_id", group.TagHandler.DeleteTag)
				authGroup.POST("/themes", group.TagHandler.CreateTheme)
				authGroup.PUT("/themes/:theme_id", group.TagHandler.UpdateTheme)
				authGroup.DELETE("/themes/:theme_id", group.TagHandler.DeleteTheme)
			}

			// 需要 superAdmin 角色
			superGroup := authGroup.Group("")
			superGroup.Use(middleware.CheckRoles(consts.RoleSuperAdmin))
			{
				superGroup.GET("/admins", group.AdminHandler.PageAdmins)
				superGroup.POST("/admins", group.AdminHandler.CreateAdmin)
				superGroup.PUT("/admins/:admin_id", group.AdminHandler.UpdateAdmin)
				superGroup.DELETE("/admins/:admin_id", group.AdminHandler.DeleteAdmin)

				// 审核记录属于审计数据，仅超级管理员可清理
				superGroup.POST("/approvals/delete", group.ModerationHandler.DeleteApprovalRecords)
			}
		}
	}

	return r
}
