package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/kafka"
	"Wayfarer/internal/repository"
	"context"
	"time"
)

type CommentService interface {
	CreateComment(ctx context.Context, kind model.PostKind, userID uint64, baseDTO *dto.CommentBaseDTO) (uint64, error)
	DeleteComment(ctx context.Context, kind model.PostKind, commentID, userID uint64) error
	GetCommentsByPost(ctx context.Context, kind model.PostKind, postID uint64) ([]*dto.CommentDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	userRepo    repository.UserRepo
	momentRepo  repository.MomentPostRepo
	teamRepo    repository.TeamPostRepo
	userService UserService
	notify      kafka.NotifyProducer
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
	momentRepo repository.MomentPostRepo,
	teamRepo repository.TeamPostRepo,
	userService UserService,
	notify kafka.NotifyProducer,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		momentRepo:  momentRepo,
		teamRepo:    teamRepo,
		userService: userService,
		notify:      notify,
	}
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, kind model.PostKind, userID uint64, baseDTO *dto.CommentBaseDTO) (uint64, error) {
	if !kind.Valid() {
		return 0, ErrParamInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	authorID, err := s.getPostAuthor(ctx, kind, baseDTO.PostID)
	if err != nil {
		return 0, err
	}

	postID := baseDTO.PostID
	msgType := kind.CommentMessageType()
	commentID, err := s.commentRepo.CreateWithMessage(ctx, kind, userID, postID, baseDTO.Content, func(insertID uint64) *model.Message {
		return &model.Message{
			SenderType:   model.SenderTypeUser,
			SenderID:     userID,
			ReceiverType: model.SenderTypeUser,
			ReceiverID:   authorID,
			Content:      baseDTO.Content,
			Type:         msgType,
			RelatedID:    &postID,
			CommentID:    &insertID,
		}
	})
	if err != nil {
		return 0, err
	}

	s.notify.Publish(ctx, &kafka.NotificationEvent{
		ReceiverID: authorID,
		SenderID:   userID,
		Type:       msgType,
		Content:    baseDTO.Content,
		RelatedID:  postID,
		CreatedAt:  time.Now(),
	})
	return commentID, nil
}

// DeleteComment 只能删除本人的评论，评论不存在与非本人删除返回同一个错误
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, kind model.PostKind, commentID, userID uint64) error {
	if !kind.Valid() {
		return ErrParamInvalid
	}
	rows, err := s.commentRepo.DeleteOwned(ctx, kind, commentID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *CommentServiceImpl) GetCommentsByPost(ctx context.Context, kind model.PostKind, postID uint64) ([]*dto.CommentDTO, error) {
	if !kind.Valid() {
		return nil, ErrParamInvalid
	}

	records, err := s.commentRepo.ListByPost(ctx, kind, postID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(records))
	for _, record := range records {
		userIDs = append(userIDs, record.UserID)
	}
	cards, err := s.userService.GetUserCardsByIds(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	comments := make([]*dto.CommentDTO, 0, len(records))
	for _, record := range records {
		comment := &dto.CommentDTO{
			CommentID: record.CommentID,
			PostID:    record.PostID,
			Content:   record.Content,
			CreatedAt: record.CreatedAt.Format(time.DateTime),
			UserID:    record.UserID,
		}
		if card := cards[record.UserID]; card != nil {
			comment.Nickname = card.Nickname
			comment.AvatarURL = card.AvatarURL
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (s *CommentServiceImpl) getPostAuthor(ctx context.Context, kind model.PostKind, postID uint64) (uint64, error) {
	if kind == model.PostKindMoment {
		post, err := s.momentRepo.GetByID(ctx, postID)
		if err != nil {
			return 0, err
		}
		if post == nil {
			return 0, ErrPostNotFound
		}
		return post.UserID, nil
	}

	post, err := s.teamRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}
	return post.UserID, nil
}
