package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TeamPostRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.TeamPost, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.TeamPost, error)
	GetByUserID(ctx context.Context, userID uint64) ([]*model.TeamPost, error)
	Create(ctx context.Context, post *model.TeamPost, imageURLs []string, itineraryURL string) error
	Update(ctx context.Context, post *model.TeamPost, imageURLs []string, itineraryURL *string) error
	Delete(ctx context.Context, id uint64) error
	FeedPage(ctx context.Context, page, limit int, themeID uint64) (*Page[*model.TeamPost], error)
	Search(ctx context.Context, keyword string) ([]*model.TeamPost, error)
	GetLikedByUser(ctx context.Context, userID uint64) ([]*model.TeamPost, error)
	GetJoinedByUser(ctx context.Context, userID uint64) ([]*model.TeamPost, error)
}

type TeamPostRepoImpl struct {
	db *gorm.DB
}

func NewTeamPostRepo(db *gorm.DB) TeamPostRepo {
	return &TeamPostRepoImpl{db: db}
}

func (s *TeamPostRepoImpl) GetByID(ctx context.Context, id uint64) (*model.TeamPost, error) {
	post := &model.TeamPost{}
	result := s.db.WithContext(ctx).First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *TeamPostRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.TeamPost, error) {
	posts := make([]*model.TeamPost, 0, len(ids))
	if len(ids) == 0 {
		return posts, nil
	}
	result := s.db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *TeamPostRepoImpl) GetByUserID(ctx context.Context, userID uint64) ([]*model.TeamPost, error) {
	posts := make([]*model.TeamPost, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *TeamPostRepoImpl) Create(ctx context.Context, post *model.TeamPost, imageURLs []string, itineraryURL string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			img := &model.TeamPostImage{PostID: post.PostID, ImageURL: url, CreatedAt: post.CreatedAt}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		if itineraryURL != "" {
			it := &model.Itinerary{PostID: post.PostID, ImageURL: itineraryURL, CreatedAt: post.CreatedAt}
			if err := tx.Create(it).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update 编辑组队帖并回到待审核；imageURLs 非 nil 时整体替换配图，
// itineraryURL 非 nil 时替换行程图
func (s *TeamPostRepoImpl) Update(ctx context.Context, post *model.TeamPost, imageURLs []string, itineraryURL *string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":              post.Title,
			"description":        post.Description,
			"start_location":     post.StartLocation,
			"end_location":       post.EndLocation,
			"duration_day":       post.DurationDay,
			"team_size":          post.TeamSize,
			"estimated_expense":  post.EstimatedExpense,
			"gender_requirement": post.GenderRequirement,
			"payment_method":     post.PaymentMethod,
			"theme_id":           post.ThemeID,
			"status":             post.Status,
		}
		if err := tx.Model(&model.TeamPost{}).
			Where("post_id = ?", post.PostID).
			Updates(updates).Error; err != nil {
			return err
		}
		if imageURLs != nil {
			if err := tx.Where("post_id = ?", post.PostID).
				Delete(&model.TeamPostImage{}).Error; err != nil {
				return err
			}
			for _, url := range imageURLs {
				img := &model.TeamPostImage{PostID: post.PostID, ImageURL: url}
				if err := tx.Create(img).Error; err != nil {
					return err
				}
			}
		}
		if itineraryURL != nil {
			if err := tx.Where("post_id = ?", post.PostID).
				Delete(&model.Itinerary{}).Error; err != nil {
				return err
			}
			if *itineraryURL != "" {
				it := &model.Itinerary{PostID: post.PostID, ImageURL: *itineraryURL}
				if err := tx.Create(it).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *TeamPostRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).
			Delete(&model.TeamPostImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).
			Delete(&model.Itinerary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TeamPost{}, id).Error
	})
}

// FeedPage 公开组队流，仅已通过；themeID 为 0 表示不按主题过滤
func (s *TeamPostRepoImpl) FeedPage(ctx context.Context, page, limit int, themeID uint64) (*Page[*model.TeamPost], error) {
	query := PageQuery{Page: page, Limit: limit}
	query.Normalize()

	base := s.db.WithContext(ctx).
		Model(&model.TeamPost{}).
		Where("status = ?", 1)
	if themeID != 0 {
		base = base.Where("theme_id = ?", themeID)
	}

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	posts := make([]*model.TeamPost, 0, query.Limit)
	err := base.Session(&gorm.Session{}).
		Order("created_at desc").
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &Page[*model.TeamPost]{
		List:        posts,
		PageSize:    query.Limit,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, query.Limit),
		CurrentPage: query.Page,
	}, nil
}

// Search 标题/描述/起止地点/付款方式 模糊匹配
func (s *TeamPostRepoImpl) Search(ctx context.Context, keyword string) ([]*model.TeamPost, error) {
	posts := make([]*model.TeamPost, 0)
	pattern := "%" + keyword + "%"
	result := s.db.WithContext(ctx).
		Where("(title LIKE ? OR description LIKE ? OR start_location LIKE ? OR end_location LIKE ? OR payment_method LIKE ?) AND status = ?",
			pattern, pattern, pattern, pattern, pattern, 1).
		Order("created_at desc").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *TeamPostRepoImpl) GetLikedByUser(ctx context.Context, userID uint64) ([]*model.TeamPost, error) {
	posts := make([]*model.TeamPost, 0)
	err := s.db.WithContext(ctx).
		Model(&model.TeamPost{}).
		Joins("JOIN team_post_likes ON team_post_likes.post_id = team_posts.post_id").
		Where("team_post_likes.user_id = ? AND team_posts.status = ?", userID, 1).
		Order("team_post_likes.created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *TeamPostRepoImpl) GetJoinedByUser(ctx context.Context, userID uint64) ([]*model.TeamPost, error) {
	posts := make([]*model.TeamPost, 0)
	err := s.db.WithContext(ctx).
		Model(&model.TeamPost{}).
		Joins("JOIN team_participants ON team_participants.post_id = team_posts.post_id").
		Where("team_participants.user_id = ?", userID).
		Order("team_participants.joined_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
