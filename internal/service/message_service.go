package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/kafka"
	"Wayfarer/internal/pkg/minio"
	"Wayfarer/internal/repository"
	"context"
	"time"
)

type MessageService interface {
	GetNotification(ctx context.Context, userID uint64) (*dto.NotificationDTO, error)
	GetInteractiveNotifications(ctx context.Context, userID uint64, page, limit int) (*repository.Page[*dto.InteractiveMessageDTO], error)
	GetMessagesBetweenUsers(ctx context.Context, userID, otherID uint64, page, limit int) (*repository.Page[*dto.MessageDTO], error)
	GetAdminNotifications(ctx context.Context, userID uint64, page, limit int) (*repository.Page[*dto.MessageDTO], error)
	SendPrivateMessage(ctx context.Context, userID uint64, sendDTO *dto.SendMessageDTO) error
}

type MessageServiceImpl struct {
	messageRepo repository.MessageRepo
	userRepo    repository.UserRepo
	extraRepo   repository.PostExtraRepo
	userService UserService
	notify      kafka.NotifyProducer
}

func NewMessageService(
	messageRepo repository.MessageRepo,
	userRepo repository.UserRepo,
	extraRepo repository.PostExtraRepo,
	userService UserService,
	notify kafka.NotifyProducer,
) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		extraRepo:   extraRepo,
		userService: userService,
		notify:      notify,
	}
}

// GetNotification 消息中心首页：私信按方向拆分，管理员通知全量，
// 互动通知只保留全局最新的一条
func (s *MessageServiceImpl) GetNotification(ctx context.Context, userID uint64) (*dto.NotificationDTO, error) {
	rows, err := s.messageRepo.GetNotificationRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.NotificationDTO{
		Messages: &dto.PrivateMessagesDTO{
			Send:     make([]*dto.MessageDTO, 0),
			Received: make([]*dto.MessageDTO, 0),
		},
		AdminNotifications: make([]*dto.MessageDTO, 0),
		Interactive:        make([]*dto.MessageDTO, 0),
	}

	// rows 按时间倒序，第一条互动消息即全局最新
	for _, row := range rows {
		item := toMessageDTO(row)
		switch {
		case row.Type == model.MessageTypePrivate && row.SenderID == userID:
			result.Messages.Send = append(result.Messages.Send, item)
		case row.Type == model.MessageTypePrivate:
			result.Messages.Received = append(result.Messages.Received, item)
		case row.Type == model.MessageTypeAdmin:
			result.AdminNotifications = append(result.AdminNotifications, item)
		default:
			if len(result.Interactive) == 0 {
				result.Interactive = append(result.Interactive, item)
			}
		}
	}
	return result, nil
}

// GetInteractiveNotifications 互动通知分页，附带发送者名片；
// 点赞/评论类再带上关联帖子最新的一张图
func (s *MessageServiceImpl) GetInteractiveNotifications(ctx context.Context, userID uint64, page, limit int) (*repository.Page[*dto.InteractiveMessageDTO], error) {
	msgPage, err := s.messageRepo.InteractivePage(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint64, 0, len(msgPage.List))
	for _, row := range msgPage.List {
		senderIDs = append(senderIDs, row.SenderID)
	}
	cards, err := s.userService.GetUserCardsByIds(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InteractiveMessageDTO, 0, len(msgPage.List))
	for _, row := range msgPage.List {
		item := &dto.InteractiveMessageDTO{
			MessageDTO: *toMessageDTO(row),
			Sender:     cards[row.SenderID],
		}
		if kind, ok := kindOfMessageType(row.Type); ok && row.RelatedID != nil {
			url, err := s.extraRepo.GetNewestImage(ctx, kind, *row.RelatedID)
			if err != nil {
				return nil, err
			}
			if url != "" {
				item.PostImage = minio.GetPublicURL(url)
			}
		}
		items = append(items, item)
	}

	return &repository.Page[*dto.InteractiveMessageDTO]{
		List:        items,
		PageSize:    msgPage.PageSize,
		TotalCount:  msgPage.TotalCount,
		TotalPages:  msgPage.TotalPages,
		CurrentPage: msgPage.CurrentPage,
	}, nil
}

func (s *MessageServiceImpl) GetMessagesBetweenUsers(ctx context.Context, userID, otherID uint64, page, limit int) (*repository.Page[*dto.MessageDTO], error) {
	msgPage, err := s.messageRepo.BetweenUsersPage(ctx, userID, otherID, page, limit)
	if err != nil {
		return nil, err
	}
	return toMessagePage(msgPage), nil
}

func (s *MessageServiceImpl) GetAdminNotifications(ctx context.Context, userID uint64, page, limit int) (*repository.Page[*dto.MessageDTO], error) {
	msgPage, err := s.messageRepo.AdminNotificationsPage(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return toMessagePage(msgPage), nil
}

func (s *MessageServiceImpl) SendPrivateMessage(ctx context.Context, userID uint64, sendDTO *dto.SendMessageDTO) error {
	receiver, err := s.userRepo.GetUserById(ctx, sendDTO.ReceiverID)
	if err != nil {
		return err
	}
	if receiver == nil {
		return ErrTargetUserInvalid
	}

	err = s.messageRepo.Create(ctx, &model.Message{
		SenderType:   model.SenderTypeUser,
		SenderID:     userID,
		ReceiverType: model.SenderTypeUser,
		ReceiverID:   sendDTO.ReceiverID,
		Content:      sendDTO.Content,
		Type:         model.MessageTypePrivate,
	})
	if err != nil {
		return err
	}

	s.notify.Publish(ctx, &kafka.NotificationEvent{
		ReceiverID: sendDTO.ReceiverID,
		SenderID:   userID,
		Type:       model.MessageTypePrivate,
		Content:    sendDTO.Content,
		CreatedAt:  time.Now(),
	})
	return nil
}

func toMessageDTO(row *model.Message) *dto.MessageDTO {
	return &dto.MessageDTO{
		MessageID:    row.ID,
		SenderType:   row.SenderType,
		SenderID:     row.SenderID,
		ReceiverType: row.ReceiverType,
		ReceiverID:   row.ReceiverID,
		Content:      row.Content,
		Type:         row.Type,
		RelatedID:    row.RelatedID,
		CommentID:    row.CommentID,
		LikeID:       row.LikeID,
		CreatedAt:    row.CreatedAt.Format(time.DateTime),
	}
}

func toMessagePage(msgPage *repository.Page[*model.Message]) *repository.Page[*dto.MessageDTO] {
	items := make([]*dto.MessageDTO, 0, len(msgPage.List))
	for _, row := range msgPage.List {
		items = append(items, toMessageDTO(row))
	}
	return &repository.Page[*dto.MessageDTO]{
		List:        items,
		PageSize:    msgPage.PageSize,
		TotalCount:  msgPage.TotalCount,
		TotalPages:  msgPage.TotalPages,
		CurrentPage: msgPage.CurrentPage,
	}
}

// kindOfMessageType 点赞/评论类消息回溯到帖子类型，其余类型没有配图
func kindOfMessageType(t string) (model.PostKind, bool) {
	switch t {
	case model.MessageTypeMomentComment, model.MessageTypeMomentLike:
		return model.PostKindMoment, true
	case model.MessageTypeTeamComment, model.MessageTypeTeamLike:
		return model.PostKindTeam, true
	default:
		return 0, false
	}
}
