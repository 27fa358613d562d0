package repository

import (
	"Wayfarer/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// BuildMessageFunc 在拿到新插入记录的主键后构造互动消息
type BuildMessageFunc func(insertID uint64) *model.Message

type LikeRepo interface {
	Exists(ctx context.Context, kind model.PostKind, userID, postID uint64) (bool, error)
	CreateWithMessage(ctx context.Context, kind model.PostKind, userID, postID uint64, buildMsg BuildMessageFunc) error
	Delete(ctx context.Context, kind model.PostKind, userID, postID uint64) error
	CountByPost(ctx context.Context, kind model.PostKind, postID uint64) (int64, error)
	BatchGetIsLiked(ctx context.Context, kind model.PostKind, userID uint64, postIDs []uint64) (map[uint64]bool, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) Exists(ctx context.Context, kind model.PostKind, userID, postID uint64) (bool, error) {
	var count int64
	var err error
	if kind == model.PostKindTeam {
		err = s.db.WithContext(ctx).
			Model(&model.TeamPostLike{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Count(&count).Error
	} else {
		err = s.db.WithContext(ctx).
			Model(&model.MomentPostLike{}).
			Where("user_id = ? AND dynamic_post_id = ?", userID, postID).
			Count(&count).Error
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithMessage 点赞与互动消息同一事务写入。
// buildMsg 为 nil 或返回 nil 时只写点赞记录。
func (s *LikeRepoImpl) CreateWithMessage(ctx context.Context, kind model.PostKind, userID, postID uint64, buildMsg BuildMessageFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var likeID uint64
		now := time.Now()
		if kind == model.PostKindTeam {
			like := &model.TeamPostLike{UserID: userID, PostID: postID, CreatedAt: now}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			likeID = like.LikeID
		} else {
			like := &model.MomentPostLike{UserID: userID, DynamicPostID: postID, CreatedAt: now}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			likeID = like.LikeID
		}
		if buildMsg == nil {
			return nil
		}
		msg := buildMsg(likeID)
		if msg == nil {
			return nil
		}
		return tx.Create(msg).Error
	})
}

func (s *LikeRepoImpl) Delete(ctx context.Context, kind model.PostKind, userID, postID uint64) error {
	if kind == model.PostKindTeam {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.TeamPostLike{}).Error
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND dynamic_post_id = ?", userID, postID).
		Delete(&model.MomentPostLike{}).Error
}

func (s *LikeRepoImpl) CountByPost(ctx context.Context, kind model.PostKind, postID uint64) (int64, error) {
	var count int64
	var err error
	if kind == model.PostKindTeam {
		err = s.db.WithContext(ctx).
			Model(&model.TeamPostLike{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	} else {
		err = s.db.WithContext(ctx).
			Model(&model.MomentPostLike{}).
			Where("dynamic_post_id = ?", postID).
			Count(&count).Error
	}
	return count, err
}

func (s *LikeRepoImpl) BatchGetIsLiked(ctx context.Context, kind model.PostKind, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	liked := make(map[uint64]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return liked, nil
	}
	ids := make([]uint64, 0, len(postIDs))
	var err error
	if kind == model.PostKindTeam {
		err = s.db.WithContext(ctx).
			Model(&model.TeamPostLike{}).
			Where("user_id = ? AND post_id IN ?", userID, postIDs).
			Pluck("post_id", &ids).Error
	} else {
		err = s.db.WithContext(ctx).
			Model(&model.MomentPostLike{}).
			Where("user_id = ? AND dynamic_post_id IN ?", userID, postIDs).
			Pluck("dynamic_post_id", &ids).Error
	}
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
