package wire

import (
	"Wayfarer/internal/api"
	"Wayfarer/internal/api/config"
	"Wayfarer/internal/api/handler"
	"Wayfarer/internal/job"
	"Wayfarer/internal/pkg/cron"
	"Wayfarer/internal/pkg/kafka"
	mongopkg "Wayfarer/internal/pkg/mongo"
	"Wayfarer/internal/repository"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router         *gin.Engine
	DB             *gorm.DB
	KafkaManager   *kafka.ConsumerManager
	CronMgr        *cron.Manager
	NotifyProducer kafka.NotifyProducer
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	notifyProducer, err := kafka.NewNotifyProducer(cfg)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	followRepo := repository.NewUserFollowRepo(db)
	momentRepo := repository.NewMomentPostRepo(db)
	teamRepo := repository.NewTeamPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	participantRepo := repository.NewParticipantRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	extraRepo := repository.NewPostExtraRepo(db)
	moderationRepo := repository.NewModerationRepo(db)
	tagRepo := repository.NewTagRepository(db)
	themeRepo := repository.NewThemeRepo(db)
	noticeRepo := mongopkg.NewNoticeRepo(mongoDB)

	userService := service.NewUserService(userRepo, followRepo)
	followService := service.NewFollowService(followRepo, userRepo, notifyProducer)
	likeService := service.NewLikeService(likeRepo, userRepo, momentRepo, teamRepo, notifyProducer)
	commentService := service.NewCommentService(commentRepo, userRepo, momentRepo, teamRepo, userService, notifyProducer)
	postService := service.NewPostService(momentRepo, extraRepo, likeRepo, followRepo, userService)
	teamService := service.NewTeamService(teamRepo, extraRepo, likeRepo, participantRepo, userService)
	searchService := service.NewSearchService(momentRepo, teamRepo, userRepo, followRepo, postService, teamService)
	messageService := service.NewMessageService(messageRepo, userRepo, extraRepo, userService, notifyProducer)
	moderationService := service.NewModerationService(moderationRepo, momentRepo, teamRepo, extraRepo, adminRepo, commentRepo)
	adminService := service.NewAdminService(adminRepo, userRepo, messageRepo, notifyProducer)
	noticeService := service.NewNoticeService(noticeRepo, adminRepo)
	tagService := service.NewTagService(tagRepo)
	themeService := service.NewThemeService(themeRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService, postService, teamService),
		FollowHandler:     handler.NewFollowHandler(followService, userService),
		PostHandler:       handler.NewPostHandler(postService),
		TeamHandler:       handler.NewTeamHandler(teamService, themeService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		LikeHandler:       handler.NewLikeHandler(likeService),
		MessageHandler:    handler.NewMessageHandler(messageService),
		SearchHandler:     handler.NewSearchHandler(searchService),
		TagHandler:        handler.NewTagHandler(tagService, themeService),
		NoticeHandler:     handler.NewNoticeHandler(noticeService),
		AdminHandler:      handler.NewAdminHandler(adminService, userService),
		ModerationHandler: handler.NewModerationHandler(moderationService),
		MediaHandler:      handler.NewMediaHandler(),
		WSHandler:         handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob())

	return &ApplicationContainer{
		Router:         router,
		DB:             db,
		KafkaManager:   kafkaMgr,
		CronMgr:        cronMgr,
		NotifyProducer: notifyProducer,
	}, nil
}
