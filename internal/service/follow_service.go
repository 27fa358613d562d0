package service

import (
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/kafka"
	"Wayfarer/internal/repository"
	"context"
	"time"
)

type FollowService interface {
	FollowOrUnfollow(ctx context.Context, userID, targetID uint64, action int) error
	GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type FollowServiceImpl struct {
	followRepo repository.UserFollowRepo
	userRepo   repository.UserRepo
	notify     kafka.NotifyProducer
}

func NewFollowService(followRepo repository.UserFollowRepo, userRepo repository.UserRepo, notify kafka.NotifyProducer) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		notify:     notify,
	}
}

// FollowOrUnfollow action=1 关注，已关注则报错；action=0 取关，无条件删除
func (s *FollowServiceImpl) FollowOrUnfollow(ctx context.Context, userID, targetID uint64, action int) error {
	if userID == targetID {
		return ErrUserFollowSelf
	}
	target, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrTargetUserInvalid
	}

	follow := &model.UserFollow{
		FollowerID:  userID,
		FollowingID: targetID,
	}
	msg := &model.Message{
		SenderType:   model.SenderTypeUser,
		SenderID:     userID,
		ReceiverType: model.SenderTypeUser,
		ReceiverID:   targetID,
		Type:         model.MessageTypeFollow,
	}

	if action == 1 {
		exist, err := s.followRepo.GetUserFollow(ctx, userID, targetID)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUserFollowExist
		}
		msg.Content = "关注了你"
		if err = s.followRepo.CreateFollowWithMessage(ctx, follow, msg); err != nil {
			if isDuplicateError(err) {
				return ErrUserFollowExist
			}
			return err
		}
	} else {
		msg.Content = "取消关注了你"
		if err = s.followRepo.DeleteFollowWithMessage(ctx, follow, msg); err != nil {
			return err
		}
	}

	s.notify.Publish(ctx, &kafka.NotificationEvent{
		ReceiverID: targetID,
		SenderID:   userID,
		Type:       model.MessageTypeFollow,
		Content:    msg.Content,
		CreatedAt:  time.Now(),
	})
	return nil
}

func (s *FollowServiceImpl) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.followRepo.GetFollowingIDs(ctx, userID)
}

func (s *FollowServiceImpl) GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.followRepo.GetFollowerIDs(ctx, userID)
}
