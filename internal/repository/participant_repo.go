package repository

import (
	"Wayfarer/internal/model"
	"context"

	"gorm.io/gorm"
)

type ParticipantRepo interface {
	Exists(ctx context.Context, userID, postID uint64) (bool, error)
	Create(ctx context.Context, participant *model.TeamParticipant) error
	Delete(ctx context.Context, userID, postID uint64) error
	CountByPost(ctx context.Context, postID uint64) (int64, error)
	GetMemberIDs(ctx context.Context, postID uint64) ([]uint64, error)
}

type ParticipantRepoImpl struct {
	db *gorm.DB
}

func NewParticipantRepo(db *gorm.DB) ParticipantRepo {
	return &ParticipantRepoImpl{db: db}
}

func (s *ParticipantRepoImpl) Exists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.TeamParticipant{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ParticipantRepoImpl) Create(ctx context.Context, participant *model.TeamParticipant) error {
	return s.db.WithContext(ctx).Create(participant).Error
}

func (s *ParticipantRepoImpl) Delete(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.TeamParticipant{}).Error
}

func (s *ParticipantRepoImpl) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.TeamParticipant{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *ParticipantRepoImpl) GetMemberIDs(ctx context.Context, postID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.TeamParticipant{}).
		Where("post_id = ?", postID).
		Order("joined_at asc").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
