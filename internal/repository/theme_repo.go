package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ThemeRepo interface {
	ListThemes(ctx context.Context) ([]*model.TeamTheme, error)
	GetThemeById(ctx context.Context, id uint64) (*model.TeamTheme, error)
	CreateTheme(ctx context.Context, theme *model.TeamTheme) error
	UpdateTheme(ctx context.Context, theme *model.TeamTheme) error
	DeleteTheme(ctx context.Context, id uint64) error
	PageThemes(ctx context.Context, query PageQuery) (*Page[*model.TeamTheme], error)
}

type ThemeRepoImpl struct {
	db *gorm.DB
}

func NewThemeRepo(db *gorm.DB) ThemeRepo {
	return &ThemeRepoImpl{db: db}
}

func (s *ThemeRepoImpl) ListThemes(ctx context.Context) ([]*model.TeamTheme, error) {
	themes := make([]*model.TeamTheme, 0)
	err := s.db.WithContext(ctx).
		Order("theme_id asc").
		Find(&themes).Error
	if err != nil {
		return nil, err
	}
	return themes, nil
}

func (s *ThemeRepoImpl) GetThemeById(ctx context.Context, id uint64) (*model.TeamTheme, error) {
	theme := &model.TeamTheme{}
	result := s.db.WithContext(ctx).First(theme, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return theme, nil
}

func (s *ThemeRepoImpl) CreateTheme(ctx context.Context, theme *model.TeamTheme) error {
	return s.db.WithContext(ctx).Create(theme).Error
}

func (s *ThemeRepoImpl) UpdateTheme(ctx context.Context, theme *model.TeamTheme) error {
	return s.db.WithContext(ctx).
		Model(&model.TeamTheme{}).
		Where("theme_id = ?", theme.ThemeID).
		Updates(theme).Error
}

func (s *ThemeRepoImpl) DeleteTheme(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.TeamTheme{}, id).Error
}

func (s *ThemeRepoImpl) PageThemes(ctx context.Context, query PageQuery) (*Page[*model.TeamTheme], error) {
	return PaginateModel[*model.TeamTheme](ctx, s.db, query)
}
