package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/repository"
	"context"
)

type ThemeService interface {
	ListThemes(ctx context.Context) ([]*dto.ThemeDTO, error)
	CreateTheme(ctx context.Context, baseDTO *dto.ThemeBaseDTO) error
	UpdateTheme(ctx context.Context, themeID uint64, baseDTO *dto.ThemeBaseDTO) error
	DeleteTheme(ctx context.Context, themeID uint64) error
	PageThemes(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.TeamTheme], error)
}

type ThemeServiceImpl struct {
	themeRepo repository.ThemeRepo
}

func NewThemeService(themeRepo repository.ThemeRepo) ThemeService {
	return &ThemeServiceImpl{themeRepo: themeRepo}
}

func (s *ThemeServiceImpl) ListThemes(ctx context.Context) ([]*dto.ThemeDTO, error) {
	themes, err := s.themeRepo.ListThemes(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.ThemeDTO, 0, len(themes))
	for _, theme := range themes {
		items = append(items, &dto.ThemeDTO{ThemeID: theme.ThemeID, Name: theme.Name})
	}
	return items, nil
}

func (s *ThemeServiceImpl) CreateTheme(ctx context.Context, baseDTO *dto.ThemeBaseDTO) error {
	return s.themeRepo.CreateTheme(ctx, &model.TeamTheme{Name: baseDTO.Name})
}

func (s *ThemeServiceImpl) UpdateTheme(ctx context.Context, themeID uint64, baseDTO *dto.ThemeBaseDTO) error {
	theme, err := s.themeRepo.GetThemeById(ctx, themeID)
	if err != nil {
		return err
	}
	if theme == nil {
		return ErrThemeNotFound
	}
	theme.Name = baseDTO.Name
	return s.themeRepo.UpdateTheme(ctx, theme)
}

func (s *ThemeServiceImpl) DeleteTheme(ctx context.Context, themeID uint64) error {
	theme, err := s.themeRepo.GetThemeById(ctx, themeID)
	if err != nil {
		return err
	}
	if theme == nil {
		return ErrThemeNotFound
	}
	return s.themeRepo.DeleteTheme(ctx, themeID)
}

func (s *ThemeServiceImpl) PageThemes(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.TeamTheme], error) {
	return s.themeRepo.PageThemes(ctx, query)
}
