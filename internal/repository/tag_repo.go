package repository

import (
	"Wayfarer/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo interface {
	ListTags(ctx context.Context) ([]*model.Tag, error)
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error)
	CreateTag(ctx context.Context, tag *model.Tag) error
	UpdateTag(ctx context.Context, tag *model.Tag) error
	DeleteTag(ctx context.Context, id uint64) error
	PageTags(ctx context.Context, query PageQuery) (*Page[*model.Tag], error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error) {
	// OnConflict DoNothing 避免并发下重复建标签
	for _, tagName := range tagNames {
		tag := model.Tag{
			Name:      tagName,
			CreatedAt: time.Now(),
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
		if err != nil {
			return nil, err
		}
	}

	var tags []*model.Tag
	err := s.db.WithContext(ctx).Where("name IN ?", tagNames).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	return tags, nil
}

func (s *tagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

func (s *tagRepoImpl) UpdateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).
		Model(&model.Tag{}).
		Where("tag_id = ?", tag.TagID).
		Updates(tag).Error
}

func (s *tagRepoImpl) DeleteTag(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).
			Delete(&model.UserTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, id).Error
	})
}

func (s *tagRepoImpl) PageTags(ctx context.Context, query PageQuery) (*Page[*model.Tag], error) {
	return PaginateModel[*model.Tag](ctx, s.db, query)
}
