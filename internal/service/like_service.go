package service

import (
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/kafka"
	"Wayfarer/internal/repository"
	"context"
	"time"
)

type LikeService interface {
	ToggleLike(ctx context.Context, kind model.PostKind, userID, postID uint64) (int, error)
}

type LikeServiceImpl struct {
	likeRepo   repository.LikeRepo
	userRepo   repository.UserRepo
	momentRepo repository.MomentPostRepo
	teamRepo   repository.TeamPostRepo
	notify     kafka.NotifyProducer
}

func NewLikeService(
	likeRepo repository.LikeRepo,
	userRepo repository.UserRepo,
	momentRepo repository.MomentPostRepo,
	teamRepo repository.TeamPostRepo,
	notify kafka.NotifyProducer,
) LikeService {
	return &LikeServiceImpl{
		likeRepo:   likeRepo,
		userRepo:   userRepo,
		momentRepo: momentRepo,
		teamRepo:   teamRepo,
		notify:     notify,
	}
}

// ToggleLike 点赞切换：已点赞则取消（返回 -1），未点赞则点赞并发互动消息（返回 +1）
func (s *LikeServiceImpl) ToggleLike(ctx context.Context, kind model.PostKind, userID, postID uint64) (int, error) {
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

	authorID, err := s.getPostAuthor(ctx, kind, postID)
	if err != nil {
		return 0, err
	}

	liked, err := s.likeRepo.Exists(ctx, kind, userID, postID)
	if err != nil {
		return 0, err
	}

	// 取消点赞不产生任何消息
	if liked {
		if err = s.likeRepo.Delete(ctx, kind, userID, postID); err != nil {
			return 0, err
		}
		return -1, nil
	}

	msgType := kind.LikeMessageType()
	err = s.likeRepo.CreateWithMessage(ctx, kind, userID, postID, func(likeID uint64) *model.Message {
		return &model.Message{
			SenderType:   model.SenderTypeUser,
			SenderID:     userID,
			ReceiverType: model.SenderTypeUser,
			ReceiverID:   authorID,
			Content:      "赞了你的帖子",
			Type:         msgType,
			RelatedID:    &postID,
			LikeID:       &likeID,
		}
	})
	if err != nil {
		return 0, err
	}

	s.notify.Publish(ctx, &kafka.NotificationEvent{
		ReceiverID: authorID,
		SenderID:   userID,
		Type:       msgType,
		Content:    "赞了你的帖子",
		RelatedID:  postID,
		CreatedAt:  time.Now(),
	})
	return 1, nil
}

func (s *LikeServiceImpl) getPostAuthor(ctx context.Context, kind model.PostKind, postID uint64) (uint64, error) {
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
