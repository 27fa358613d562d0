package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AdminRepo interface {
	GetAdminById(ctx context.Context, id uint64) (*model.Admin, error)
	GetAdminByIds(ctx context.Context, ids []uint64) ([]*model.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	CreateAdmin(ctx context.Context, admin *model.Admin) error
	UpdateAdmin(ctx context.Context, admin *model.Admin) error
	DeleteAdmin(ctx context.Context, id uint64) error
	PageAdmins(ctx context.Context, query PageQuery) (*Page[*model.Admin], error)
}

type AdminRepoImpl struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepo {
	return &AdminRepoImpl{db: db}
}

func (s *AdminRepoImpl) GetAdminById(ctx context.Context, id uint64) (*model.Admin, error) {
	admin := &model.Admin{}
	result := s.db.WithContext(ctx).First(admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return admin, nil
}

func (s *AdminRepoImpl) GetAdminByIds(ctx context.Context, ids []uint64) ([]*model.Admin, error) {
	admins := make([]*model.Admin, 0, len(ids))
	if len(ids) == 0 {
		return admins, nil
	}
	result := s.db.WithContext(ctx).
		Where("admin_id IN ?", ids).
		Find(&admins)
	if result.Error != nil {
		return nil, result.Error
	}
	return admins, nil
}

func (s *AdminRepoImpl) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admin := &model.Admin{}
	result := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return admin, nil
}

func (s *AdminRepoImpl) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}

func (s *AdminRepoImpl) UpdateAdmin(ctx context.Context, admin *model.Admin) error {
	return s.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("admin_id = ?", admin.AdminID).
		Updates(admin).Error
}

func (s *AdminRepoImpl) DeleteAdmin(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Admin{}, id).Error
}

func (s *AdminRepoImpl) PageAdmins(ctx context.Context, query PageQuery) (*Page[*model.Admin], error) {
	return PaginateModel[*model.Admin](ctx, s.db, query)
}
