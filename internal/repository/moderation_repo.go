package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ModerationRepo interface {
	BatchUpdateStatus(ctx context.Context, kind model.PostKind, postIDs []uint64, status int8, adminID uint64) error
	BatchDeletePosts(ctx context.Context, kind model.PostKind, postIDs []uint64) error
	PageApprovalRecords(ctx context.Context, query PageQuery) (*Page[*model.ApprovalRecord], error)
	DeleteApprovalRecords(ctx context.Context, ids []uint64) error
	GetRecommendation(ctx context.Context, postID uint64, kind model.PostKind) (*model.Recommendation, error)
	CreateRecommendation(ctx context.Context, rec *model.Recommendation) error
	DeleteRecommendation(ctx context.Context, postID uint64, kind model.PostKind) error
	PageRecommendations(ctx context.Context, query PageQuery) (*Page[*model.Recommendation], error)
	ListRecommendations(ctx context.Context) ([]*model.Recommendation, error)
	PageMomentPosts(ctx context.Context, query PageQuery) (*Page[*model.MomentPost], error)
	PageTeamPosts(ctx context.Context, query PageQuery) (*Page[*model.TeamPost], error)
}

type ModerationRepoImpl struct {
	db *gorm.DB
}

func NewModerationRepo(db *gorm.DB) ModerationRepo {
	return &ModerationRepoImpl{db: db}
}

// BatchUpdateStatus 状态批改与逐条审核流水同一事务。
// 任何一条流水写失败则整批回滚。
func (s *ModerationRepoImpl) BatchUpdateStatus(ctx context.Context, kind model.PostKind, postIDs []uint64, status int8, adminID uint64) error {
	if len(postIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if kind == model.PostKindTeam {
			err = tx.Model(&model.TeamPost{}).
				Where("post_id IN ?", postIDs).
				Update("status", status).Error
		} else {
			err = tx.Model(&model.MomentPost{}).
				Where("dynamic_post_id IN ?", postIDs).
				Update("status", status).Error
		}
		if err != nil {
			return err
		}

		now := time.Now()
		for _, postID := range postIDs {
			record := &model.ApprovalRecord{
				PostID:    postID,
				AdminID:   adminID,
				Type:      kind.ApprovalType(),
				Status:    status,
				CreatedAt: now,
			}
			if err = tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ModerationRepoImpl) BatchDeletePosts(ctx context.Context, kind model.PostKind, postIDs []uint64) error {
	if len(postIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if kind == model.PostKindTeam {
			if err := tx.Where("post_id IN ?", postIDs).
				Delete(&model.TeamPostImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).
				Delete(&model.Itinerary{}).Error; err != nil {
				return err
			}
			return tx.Where("post_id IN ?", postIDs).
				Delete(&model.TeamPost{}).Error
		}
		if err := tx.Where("dynamic_post_id IN ?", postIDs).
			Delete(&model.MomentPostImage{}).Error; err != nil {
			return err
		}
		return tx.Where("dynamic_post_id IN ?", postIDs).
			Delete(&model.MomentPost{}).Error
	})
}

func (s *ModerationRepoImpl) PageApprovalRecords(ctx context.Context, query PageQuery) (*Page[*model.ApprovalRecord], error) {
	return PaginateModel[*model.ApprovalRecord](ctx, s.db, query)
}

func (s *ModerationRepoImpl) DeleteApprovalRecords(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.ApprovalRecord{}).Error
}

func (s *ModerationRepoImpl) GetRecommendation(ctx context.Context, postID uint64, kind model.PostKind) (*model.Recommendation, error) {
	rec := &model.Recommendation{}
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND type = ?", postID, kind.ApprovalType()).
		First(rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rec, nil
}

func (s *ModerationRepoImpl) CreateRecommendation(ctx context.Context, rec *model.Recommendation) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *ModerationRepoImpl) DeleteRecommendation(ctx context.Context, postID uint64, kind model.PostKind) error {
	return s.db.WithContext(ctx).
		Where("post_id = ? AND type = ?", postID, kind.ApprovalType()).
		Delete(&model.Recommendation{}).Error
}

func (s *ModerationRepoImpl) PageRecommendations(ctx context.Context, query PageQuery) (*Page[*model.Recommendation], error) {
	return PaginateModel[*model.Recommendation](ctx, s.db, query)
}

// 后台帖子列表不过滤状态，靠 query.Filters 自选
func (s *ModerationRepoImpl) PageMomentPosts(ctx context.Context, query PageQuery) (*Page[*model.MomentPost], error) {
	return PaginateModel[*model.MomentPost](ctx, s.db, query)
}

func (s *ModerationRepoImpl) PageTeamPosts(ctx context.Context, query PageQuery) (*Page[*model.TeamPost], error) {
	return PaginateModel[*model.TeamPost](ctx, s.db, query)
}

func (s *ModerationRepoImpl) ListRecommendations(ctx context.Context) ([]*model.Recommendation, error) {
	recs := make([]*model.Recommendation, 0)
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
