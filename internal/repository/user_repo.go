package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User, tagIDs []uint64) error
	UpdatePassword(ctx context.Context, id uint64, hashed string) error
	UpdateUserStatus(ctx context.Context, id uint64, status int8) (int64, error)
	DeleteUser(ctx context.Context, id uint64) error
	SearchUsers(ctx context.Context, keyword string) ([]*model.User, error)
	GetUserTags(ctx context.Context, userID uint64) ([]*model.Tag, error)
	PageUsers(ctx context.Context, query PageQuery) (*Page[*model.User], error)
	CountLikesGiven(ctx context.Context, userID uint64) (int64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	result := s.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// UpdateUser 更新资料，tagIDs 非 nil 时整体替换用户标签
func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("user_id = ?", user.UserID).
			Updates(user).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		if err := tx.Where("user_id = ?", user.UserID).
			Delete(&model.UserTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&model.UserTag{UserID: user.UserID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *UserRepoImpl) UpdatePassword(ctx context.Context, id uint64, hashed string) error {
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", id).
		Update("password", hashed).Error
}

func (s *UserRepoImpl) UpdateUserStatus(ctx context.Context, id uint64, status int8) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

// SearchUsers 按用户名/昵称/ID/签名/地区做模糊匹配
func (s *UserRepoImpl) SearchUsers(ctx context.Context, keyword string) ([]*model.User, error) {
	users := make([]*model.User, 0)
	pattern := "%" + keyword + "%"
	result := s.db.WithContext(ctx).
		Where("username LIKE ? OR nickname LIKE ? OR user_id LIKE ? OR bio LIKE ? OR region_name LIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserTags(ctx context.Context, userID uint64) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := s.db.WithContext(ctx).
		Model(&model.Tag{}).
		Joins("JOIN user_tags ON user_tags.tag_id = tags.tag_id").
		Where("user_tags.user_id = ?", userID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *UserRepoImpl) PageUsers(ctx context.Context, query PageQuery) (*Page[*model.User], error) {
	return PaginateModel[*model.User](ctx, s.db, query)
}

// CountLikesGiven 用户在两类帖子下送出的点赞总数
func (s *UserRepoImpl) CountLikesGiven(ctx context.Context, userID uint64) (int64, error) {
	var momentCount, teamCount int64
	if err := s.db.WithContext(ctx).
		Model(&model.MomentPostLike{}).
		Where("user_id = ?", userID).
		Count(&momentCount).Error; err != nil {
		return 0, err
	}
	if err := s.db.WithContext(ctx).
		Model(&model.TeamPostLike{}).
		Where("user_id = ?", userID).
		Count(&teamCount).Error; err != nil {
		return 0, err
	}
	return momentCount + teamCount, nil
}
