package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/repository"
	"context"
)

type TagService interface {
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
	CreateTag(ctx context.Context, baseDTO *dto.TagBaseDTO) error
	UpdateTag(ctx context.Context, tagID uint64, baseDTO *dto.TagBaseDTO) error
	DeleteTag(ctx context.Context, tagID uint64) error
	PageTags(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.Tag], error)
}

type TagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &TagServiceImpl{tagRepo: tagRepo}
}

func (s *TagServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		items = append(items, &dto.TagDTO{TagID: tag.TagID, Name: tag.Name})
	}
	return items, nil
}

func (s *TagServiceImpl) CreateTag(ctx context.Context, baseDTO *dto.TagBaseDTO) error {
	return s.tagRepo.CreateTag(ctx, &model.Tag{Name: baseDTO.Name})
}

func (s *TagServiceImpl) UpdateTag(ctx context.Context, tagID uint64, baseDTO *dto.TagBaseDTO) error {
	return s.tagRepo.UpdateTag(ctx, &model.Tag{TagID: tagID, Name: baseDTO.Name})
}

func (s *TagServiceImpl) DeleteTag(ctx context.Context, tagID uint64) error {
	return s.tagRepo.DeleteTag(ctx, tagID)
}

func (s *TagServiceImpl) PageTags(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.Tag], error) {
	return s.tagRepo.PageTags(ctx, query)
}
