package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type MomentPostRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.MomentPost, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.MomentPost, error)
	GetByUserID(ctx context.Context, userID uint64) ([]*model.MomentPost, error)
	Create(ctx context.Context, post *model.MomentPost, imageURLs []string) error
	Update(ctx context.Context, post *model.MomentPost, imageURLs []string) error
	Delete(ctx context.Context, id uint64) error
	FeedPage(ctx context.Context, page, limit int, authorIDs []uint64) (*Page[*model.MomentPost], error)
	Search(ctx context.Context, keyword string) ([]*model.MomentPost, error)
	GetLikedByUser(ctx context.Context, userID uint64) ([]*model.MomentPost, error)
}

type MomentPostRepoImpl struct {
	db *gorm.DB
}

func NewMomentPostRepo(db *gorm.DB) MomentPostRepo {
	return &MomentPostRepoImpl{db: db}
}

func (s *MomentPostRepoImpl) GetByID(ctx context.Context, id uint64) (*model.MomentPost, error) {
	post := &model.MomentPost{}
	result := s.db.WithContext(ctx).First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *MomentPostRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.MomentPost, error) {
	posts := make([]*model.MomentPost, 0, len(ids))
	if len(ids) == 0 {
		return posts, nil
	}
	result := s.db.WithContext(ctx).
		Where("dynamic_post_id IN ?", ids).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *MomentPostRepoImpl) GetByUserID(ctx context.Context, userID uint64) ([]*model.MomentPost, error) {
	posts := make([]*model.MomentPost, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *MomentPostRepoImpl) Create(ctx context.Context, post *model.MomentPost, imageURLs []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			img := &model.MomentPostImage{DynamicPostID: post.DynamicPostID, ImageURL: url, CreatedAt: post.CreatedAt}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update 编辑内容并整体替换配图，状态回到待审核
func (s *MomentPostRepoImpl) Update(ctx context.Context, post *model.MomentPost, imageURLs []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"content": post.Content,
			"status":  post.Status,
		}
		if err := tx.Model(&model.MomentPost{}).
			Where("dynamic_post_id = ?", post.DynamicPostID).
			Updates(updates).Error; err != nil {
			return err
		}
		if imageURLs == nil {
			return nil
		}
		if err := tx.Where("dynamic_post_id = ?", post.DynamicPostID).
			Delete(&model.MomentPostImage{}).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			img := &model.MomentPostImage{DynamicPostID: post.DynamicPostID, ImageURL: url}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *MomentPostRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dynamic_post_id = ?", id).
			Delete(&model.MomentPostImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MomentPost{}, id).Error
	})
}

// FeedPage 公开动态流，仅展示已通过的帖子；authorIDs 非空时限定作者集合
func (s *MomentPostRepoImpl) FeedPage(ctx context.Context, page, limit int, authorIDs []uint64) (*Page[*model.MomentPost], error) {
	query := PageQuery{Page: page, Limit: limit}
	query.Normalize()

	base := s.db.WithContext(ctx).
		Model(&model.MomentPost{}).
		Where("status = ?", 1)
	if len(authorIDs) > 0 {
		base = base.Where("user_id IN ?", authorIDs)
	}

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	posts := make([]*model.MomentPost, 0, query.Limit)
	err := base.Session(&gorm.Session{}).
		Order("created_at desc").
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &Page[*model.MomentPost]{
		List:        posts,
		PageSize:    query.Limit,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, query.Limit),
		CurrentPage: query.Page,
	}, nil
}

func (s *MomentPostRepoImpl) Search(ctx context.Context, keyword string) ([]*model.MomentPost, error) {
	posts := make([]*model.MomentPost, 0)
	result := s.db.WithContext(ctx).
		Where("content LIKE ? AND status = ?", "%"+keyword+"%", 1).
		Order("created_at desc").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *MomentPostRepoImpl) GetLikedByUser(ctx context.Context, userID uint64) ([]*model.MomentPost, error) {
	posts := make([]*model.MomentPost, 0)
	err := s.db.WithContext(ctx).
		Model(&model.MomentPost{}).
		Joins("JOIN moment_post_likes ON moment_post_likes.dynamic_post_id = moment_posts.dynamic_post_id").
		Where("moment_post_likes.user_id = ? AND moment_posts.status = ?", userID, 1).
		Order("moment_post_likes.created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
