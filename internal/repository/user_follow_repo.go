package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserFollowRepo interface {
	GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error)
	GetFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error)
	GetFollowerIDs(ctx context.Context, followingID uint64) ([]uint64, error)
	GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error)
	CreateFollowWithMessage(ctx context.Context, follow *model.UserFollow, msg *model.Message) error
	DeleteFollowWithMessage(ctx context.Context, follow *model.UserFollow, msg *model.Message) error
	BatchGetIsFollowed(ctx context.Context, followerID uint64, targetIDs []uint64) (map[uint64]bool, error)
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

// GetUserFollow 查询关注边，不存在返回 nil
func (s *UserFollowRepoImpl) GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
	var follow model.UserFollow
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

func (s *UserFollowRepoImpl) GetFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *UserFollowRepoImpl) GetFollowerIDs(ctx context.Context, followingID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("following_id = ?", followingID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *UserFollowRepoImpl) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("following_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *UserFollowRepoImpl) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CreateFollowWithMessage 建边和关注消息同一事务落库
func (s *UserFollowRepoImpl) CreateFollowWithMessage(ctx context.Context, follow *model.UserFollow, msg *model.Message) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follow).Error; err != nil {
			return err
		}
		return tx.Create(msg).Error
	})
}

// DeleteFollowWithMessage 删边无条件执行，消息同事务写入
func (s *UserFollowRepoImpl) DeleteFollowWithMessage(ctx context.Context, follow *model.UserFollow, msg *model.Message) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? AND following_id = ?", follow.FollowerID, follow.FollowingID).
			Delete(&model.UserFollow{}).Error; err != nil {
			return err
		}
		return tx.Create(msg).Error
	})
}

func (s *UserFollowRepoImpl) BatchGetIsFollowed(ctx context.Context, followerID uint64, targetIDs []uint64) (map[uint64]bool, error) {
	followed := make(map[uint64]bool, len(targetIDs))
	if followerID == 0 || len(targetIDs) == 0 {
		return followed, nil
	}
	ids := make([]uint64, 0, len(targetIDs))
	err := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, targetIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		followed[id] = true
	}
	return followed, nil
}
