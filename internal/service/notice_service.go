package service

import (
	"Wayfarer/internal/api/dto"
	mongopkg "Wayfarer/internal/pkg/mongo"
	"Wayfarer/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NoticeService interface {
	CreateNotice(ctx context.Context, adminID uint64, baseDTO *dto.NoticeBaseDTO) error
	UpdateNotice(ctx context.Context, noticeID string, baseDTO *dto.NoticeBaseDTO) error
	DeleteNotice(ctx context.Context, noticeID string) error
	GetNotice(ctx context.Context, noticeID string) (*dto.NoticeDTO, error)
	PageNotices(ctx context.Context, page, limit int) (*repository.Page[*dto.NoticeDTO], error)
}

type NoticeServiceImpl struct {
	noticeRepo mongopkg.NoticeRepo
	adminRepo  repository.AdminRepo
}

func NewNoticeService(noticeRepo mongopkg.NoticeRepo, adminRepo repository.AdminRepo) NoticeService {
	return &NoticeServiceImpl{
		noticeRepo: noticeRepo,
		adminRepo:  adminRepo,
	}
}

func (s *NoticeServiceImpl) CreateNotice(ctx context.Context, adminID uint64, baseDTO *dto.NoticeBaseDTO) error {
	return s.noticeRepo.CreateNotice(ctx, &mongopkg.NoticeModel{
		AdminID:   adminID,
		Title:     baseDTO.Title,
		Content:   baseDTO.Content,
		CreatedAt: time.Now(),
	})
}

func (s *NoticeServiceImpl) UpdateNotice(ctx context.Context, noticeID string, baseDTO *dto.NoticeBaseDTO) error {
	objectID, err := primitive.ObjectIDFromHex(noticeID)
	if err != nil {
		return ErrParamInvalid
	}
	err = s.noticeRepo.UpdateNotice(ctx, objectID, baseDTO.Title, baseDTO.Content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoticeNotFound
	}
	return err
}

func (s *NoticeServiceImpl) DeleteNotice(ctx context.Context, noticeID string) error {
	objectID, err := primitive.ObjectIDFromHex(noticeID)
	if err != nil {
		return ErrParamInvalid
	}
	return s.noticeRepo.DeleteNotice(ctx, objectID)
}

func (s *NoticeServiceImpl) GetNotice(ctx context.Context, noticeID string) (*dto.NoticeDTO, error) {
	objectID, err := primitive.ObjectIDFromHex(noticeID)
	if err != nil {
		return nil, ErrParamInvalid
	}
	notice, err := s.noticeRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}

	items, err := s.attachAdminInfo(ctx, []*mongopkg.NoticeModel{notice})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *NoticeServiceImpl) PageNotices(ctx context.Context, page, limit int) (*repository.Page[*dto.NoticeDTO], error) {
	if page < 1 {
		page = repository.DefaultPage
	}
	if limit < 1 {
		limit = repository.DefaultLimit
	}

	total, err := s.noticeRepo.CountNotices(ctx)
	if err != nil {
		return nil, err
	}
	notices, err := s.noticeRepo.GetNoticeList(ctx, int64(limit), int64((page-1)*limit))
	if err != nil {
		return nil, err
	}

	items, err := s.attachAdminInfo(ctx, notices)
	if err != nil {
		return nil, err
	}
	return &repository.Page[*dto.NoticeDTO]{
		List:        items,
		PageSize:    limit,
		TotalCount:  total,
		TotalPages:  repository.TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

func (s *NoticeServiceImpl) attachAdminInfo(ctx context.Context, notices []*mongopkg.NoticeModel) ([]*dto.NoticeDTO, error) {
	adminIDs := make([]uint64, 0, len(notices))
	for _, notice := range notices {
		adminIDs = append(adminIDs, notice.AdminID)
	}
	admins, err := s.adminRepo.GetAdminByIds(ctx, adminIDs)
	if err != nil {
		return nil, err
	}
	nicknames := make(map[uint64]string, len(admins))
	for _, admin := range admins {
		nicknames[admin.AdminID] = admin.Nickname
	}

	items := make([]*dto.NoticeDTO, 0, len(notices))
	for _, notice := range notices {
		items = append(items, &dto.NoticeDTO{
			ID:            notice.ID.Hex(),
			Title:         notice.Title,
			Content:       notice.Content,
			CreatedAt:     notice.CreatedAt.Format(time.DateTime),
			AdminID:       notice.AdminID,
			AdminNickname: nicknames[notice.AdminID],
		})
	}
	return items, nil
}
