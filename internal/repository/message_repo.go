package repository

import (
	"Wayfarer/internal/model"
	"context"

	"gorm.io/gorm"
)

type MessageRepo interface {
	Create(ctx context.Context, msg *model.Message) error
	GetNotificationRows(ctx context.Context, userID uint64) ([]*model.Message, error)
	InteractivePage(ctx context.Context, userID uint64, page, limit int) (*Page[*model.Message], error)
	BetweenUsersPage(ctx context.Context, userID, otherID uint64, page, limit int) (*Page[*model.Message], error)
	AdminNotificationsPage(ctx context.Context, userID uint64, page, limit int) (*Page[*model.Message], error)
	PageMessages(ctx context.Context, query PageQuery) (*Page[*model.Message], error)
	DeleteByIDs(ctx context.Context, ids []uint64) error
}

type MessageRepoImpl struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &MessageRepoImpl{db: db}
}

func (s *MessageRepoImpl) Create(ctx context.Context, msg *model.Message) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

// GetNotificationRows 通知页单次查询：
// 私信取双向，后台通知和互动消息只取发给本人的，统一按时间倒序。
func (s *MessageRepoImpl) GetNotificationRows(ctx context.Context, userID uint64) ([]*model.Message, error) {
	messages := make([]*model.Message, 0)
	err := s.db.WithContext(ctx).
		Where("(type = ? AND (sender_id = ? OR receiver_id = ?)) OR (type = ? AND receiver_id = ?) OR (type NOT IN ? AND receiver_id = ?)",
			model.MessageTypePrivate, userID, userID,
			model.MessageTypeAdmin, userID,
			[]string{model.MessageTypePrivate, model.MessageTypeAdmin}, userID).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// InteractivePage 全量互动消息分页，新的在前
func (s *MessageRepoImpl) InteractivePage(ctx context.Context, userID uint64, page, limit int) (*Page[*model.Message], error) {
	query := PageQuery{Page: page, Limit: limit}
	query.Normalize()

	base := s.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("type NOT IN ? AND receiver_id = ?",
			[]string{model.MessageTypePrivate, model.MessageTypeAdmin}, userID)

	return s.pageWith(base, query)
}

// BetweenUsersPage 双人私信分页。计数沿用历史口径：
// 只按参与双方过滤，不限定消息类型。
func (s *MessageRepoImpl) BetweenUsersPage(ctx context.Context, userID, otherID uint64, page, limit int) (*Page[*model.Message], error) {
	query := PageQuery{Page: page, Limit: limit}
	query.Normalize()

	pair := "((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))"

	var totalCount int64
	err := s.db.WithContext(ctx).
		Model(&model.Message{}).
		Where(pair, userID, otherID, otherID, userID).
		Count(&totalCount).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*model.Message, 0, query.Limit)
	err = s.db.WithContext(ctx).
		Where("type = ? AND "+pair, model.MessageTypePrivate, userID, otherID, otherID, userID).
		Order("created_at desc").
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return &Page[*model.Message]{
		List:        messages,
		PageSize:    query.Limit,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, query.Limit),
		CurrentPage: query.Page,
	}, nil
}

func (s *MessageRepoImpl) AdminNotificationsPage(ctx context.Context, userID uint64, page, limit int) (*Page[*model.Message], error) {
	query := PageQuery{Page: page, Limit: limit}
	query.Normalize()

	base := s.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("type = ? AND receiver_id = ?", model.MessageTypeAdmin, userID)

	return s.pageWith(base, query)
}

func (s *MessageRepoImpl) PageMessages(ctx context.Context, query PageQuery) (*Page[*model.Message], error) {
	return PaginateModel[*model.Message](ctx, s.db, query)
}

func (s *MessageRepoImpl) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.Message{}).Error
}

func (s *MessageRepoImpl) pageWith(base *gorm.DB, query PageQuery) (*Page[*model.Message], error) {
	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	messages := make([]*model.Message, 0, query.Limit)
	err := base.Session(&gorm.Session{}).
		Order("created_at desc").
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return &Page[*model.Message]{
		List:        messages,
		PageSize:    query.Limit,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, query.Limit),
		CurrentPage: query.Page,
	}, nil
}
