package repository

import (
	"Wayfarer/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// CommentRecord 两类评论表的统一视图
type CommentRecord struct {
	CommentID uint64    `json:"comment_id"`
	PostID    uint64    `json:"post_id"`
	UserID    uint64    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentRepo interface {
	CreateWithMessage(ctx context.Context, kind model.PostKind, userID, postID uint64, content string, buildMsg BuildMessageFunc) (uint64, error)
	DeleteOwned(ctx context.Context, kind model.PostKind, commentID, userID uint64) (int64, error)
	DeleteByID(ctx context.Context, kind model.PostKind, commentID uint64) error
	ListByPost(ctx context.Context, kind model.PostKind, postID uint64) ([]*CommentRecord, error)
	CountByPost(ctx context.Context, kind model.PostKind, postID uint64) (int64, error)
	PageMomentComments(ctx context.Context, query PageQuery) (*Page[*model.MomentPostComment], error)
	PageTeamComments(ctx context.Context, query PageQuery) (*Page[*model.TeamPostComment], error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// CreateWithMessage 评论与互动消息同一事务写入，返回新评论 ID
func (s *CommentRepoImpl) CreateWithMessage(ctx context.Context, kind model.PostKind, userID, postID uint64, content string, buildMsg BuildMessageFunc) (uint64, error) {
	var commentID uint64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if kind == model.PostKindTeam {
			comment := &model.TeamPostComment{PostID: postID, UserID: userID, Content: content, CreatedAt: now}
			if err := tx.Create(comment).Error; err != nil {
				return err
			}
			commentID = comment.CommentID
		} else {
			comment := &model.MomentPostComment{DynamicPostID: postID, UserID: userID, Content: content, CreatedAt: now}
			if err := tx.Create(comment).Error; err != nil {
				return err
			}
			commentID = comment.CommentID
		}
		if buildMsg == nil {
			return nil
		}
		msg := buildMsg(commentID)
		if msg == nil {
			return nil
		}
		return tx.Create(msg).Error
	})
	if err != nil {
		return 0, err
	}
	return commentID, nil
}

// DeleteOwned 按 (comment_id, user_id) 删除，返回删除行数。
// 评论不存在和非本人删除在这里不可区分。
func (s *CommentRepoImpl) DeleteOwned(ctx context.Context, kind model.PostKind, commentID, userID uint64) (int64, error) {
	var result *gorm.DB
	if kind == model.PostKindTeam {
		result = s.db.WithContext(ctx).
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&model.TeamPostComment{})
	} else {
		result = s.db.WithContext(ctx).
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&model.MomentPostComment{})
	}
	return result.RowsAffected, result.Error
}

func (s *CommentRepoImpl) DeleteByID(ctx context.Context, kind model.PostKind, commentID uint64) error {
	if kind == model.PostKindTeam {
		return s.db.WithContext(ctx).Delete(&model.TeamPostComment{}, commentID).Error
	}
	return s.db.WithContext(ctx).Delete(&model.MomentPostComment{}, commentID).Error
}

func (s *CommentRepoImpl) ListByPost(ctx context.Context, kind model.PostKind, postID uint64) ([]*CommentRecord, error) {
	records := make([]*CommentRecord, 0)
	if kind == model.PostKindTeam {
		comments := make([]*model.TeamPostComment, 0)
		err := s.db.WithContext(ctx).
			Where("post_id = ?", postID).
			Order("created_at desc").
			Find(&comments).Error
		if err != nil {
			return nil, err
		}
		for _, c := range comments {
			records = append(records, &CommentRecord{
				CommentID: c.CommentID, PostID: c.PostID, UserID: c.UserID,
				Content: c.Content, CreatedAt: c.CreatedAt,
			})
		}
		return records, nil
	}

	comments := make([]*model.MomentPostComment, 0)
	err := s.db.WithContext(ctx).
		Where("dynamic_post_id = ?", postID).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		records = append(records, &CommentRecord{
			CommentID: c.CommentID, PostID: c.DynamicPostID, UserID: c.UserID,
			Content: c.Content, CreatedAt: c.CreatedAt,
		})
	}
	return records, nil
}

func (s *CommentRepoImpl) CountByPost(ctx context.Context, kind model.PostKind, postID uint64) (int64, error) {
	var count int64
	var err error
	if kind == model.PostKindTeam {
		err = s.db.WithContext(ctx).
			Model(&model.TeamPostComment{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	} else {
		err = s.db.WithContext(ctx).
			Model(&model.MomentPostComment{}).
			Where("dynamic_post_id = ?", postID).
			Count(&count).Error
	}
	return count, err
}

func (s *CommentRepoImpl) PageMomentComments(ctx context.Context, query PageQuery) (*Page[*model.MomentPostComment], error) {
	return PaginateModel[*model.MomentPostComment](ctx, s.db, query)
}

func (s *CommentRepoImpl) PageTeamComments(ctx context.Context, query PageQuery) (*Page[*model.TeamPostComment], error) {
	return PaginateModel[*model.TeamPostComment](ctx, s.db, query)
}
