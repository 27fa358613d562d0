package repository

import (
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/redis"
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const countCacheExpiration = 7 * 24 * time.Hour

// PostExtraRepo 帖子关联信息：配图、行程图与各类计数。
// 计数走 Redis 缓存，未命中回源 DB 后异步无所谓地写缓存。
type PostExtraRepo interface {
	GetImages(ctx context.Context, kind model.PostKind, postID uint64) ([]string, error)
	GetNewestImage(ctx context.Context, kind model.PostKind, postID uint64) (string, error)
	GetFirstItineraryImage(ctx context.Context, postID uint64) (string, error)
	GetLikeCount(ctx context.Context, kind model.PostKind, postID uint64) (int64, error)
	GetCommentCount(ctx context.Context, kind model.PostKind, postID uint64) (int64, error)
	GetJoinCount(ctx context.Context, postID uint64) (int64, error)
	DeleteImages(ctx context.Context, kind model.PostKind, imageIDs []uint64) error
	DeleteItineraries(ctx context.Context, postIDs []uint64) error
}

type PostExtraRepoImpl struct {
	db *gorm.DB
}

func NewPostExtraRepo(db *gorm.DB) PostExtraRepo {
	return &PostExtraRepoImpl{db: db}
}

func (s *PostExtraRepoImpl) GetImages(ctx context.Context, kind model.PostKind, postID uint64) ([]string, error) {
	urls := make([]string, 0)
	var err error
	if kind == model.PostKindTeam {
		err = s.db.WithContext(ctx).
			Model(&model.TeamPostImage{}).
			Where("post_id = ?", postID).
			Order("image_id asc").
			Pluck("image_url", &urls).Error
	} else {
		err = s.db.WithContext(ctx).
			Model(&model.MomentPostImage{}).
			Where("dynamic_post_id = ?", postID).
			Order("image_id asc").
			Pluck("image_url", &urls).Error
	}
	if err != nil {
		return nil, err
	}
	return urls, nil
}

// GetNewestImage 帖子最新一张配图，没有返回空串
func (s *PostExtraRepoImpl) GetNewestImage(ctx context.Context, kind model.PostKind, postID uint64) (string, error) {
	var err error
	if kind == model.PostKindTeam {
		img := &model.TeamPostImage{}
		err = s.db.WithContext(ctx).
			Where("post_id = ?", postID).
			Order("image_id desc").
			First(img).Error
		if err == nil {
			return img.ImageURL, nil
		}
	} else {
		img := &model.MomentPostImage{}
		err = s.db.WithContext(ctx).
			Where("dynamic_post_id = ?", postID).
			Order("image_id desc").
			First(img).Error
		if err == nil {
			return img.ImageURL, nil
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return "", err
}

func (s *PostExtraRepoImpl) GetFirstItineraryImage(ctx context.Context, postID uint64) (string, error) {
	it := &model.Itinerary{}
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("itinerary_id asc").
		First(it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return it.ImageURL, nil
}

func (s *PostExtraRepoImpl) GetLikeCount(ctx context.Context, kind model.PostKind, postID uint64) (int64, error) {
	key := consts.MomentLikeKey
	if kind == model.PostKindTeam {
		key = consts.TeamLikeKey
	}
	return s.cachedCount(ctx, key+strconv.FormatUint(postID, 10), func() (int64, error) {
		var count int64
		var err error
		if kind == model.PostKindTeam {
			err = s.db.WithContext(ctx).
				Model(&model.TeamPostLike{}).
				Where("post_id = ?", postID).
				Count(&count).Error
		} else {
			err = s.db.WithContext(ctx).
				Model(&model.MomentPostLike{}).
				Where("dynamic_post_id = ?", postID).
				Count(&count).Error
		}
		return count, err
	})
}

func (s *PostExtraRepoImpl) GetCommentCount(ctx context.Context, kind model.PostKind, postID uint64) (int64, error) {
	key := consts.MomentCommentKey
	if kind == model.PostKindTeam {
		key = consts.TeamCommentKey
	}
	return s.cachedCount(ctx, key+strconv.FormatUint(postID, 10), func() (int64, error) {
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
	})
}

func (s *PostExtraRepoImpl) GetJoinCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.TeamJoinKey+strconv.FormatUint(postID, 10), func() (int64, error) {
		var count int64
		err := s.db.WithContext(ctx).
			Model(&model.TeamParticipant{}).
			Where("post_id = ?", postID).
			Count(&count).Error
		return count, err
	})
}

func (s *PostExtraRepoImpl) DeleteImages(ctx context.Context, kind model.PostKind, imageIDs []uint64) error {
	if kind == model.PostKindTeam {
		return s.db.WithContext(ctx).
			Where("image_id IN ?", imageIDs).
			Delete(&model.TeamPostImage{}).Error
	}
	return s.db.WithContext(ctx).
		Where("image_id IN ?", imageIDs).
		Delete(&model.MomentPostImage{}).Error
}

// DeleteItineraries 按帖子维度清理行程图
func (s *PostExtraRepoImpl) DeleteItineraries(ctx context.Context, postIDs []uint64) error {
	return s.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Delete(&model.Itinerary{}).Error
}

func (s *PostExtraRepoImpl) cachedCount(ctx context.Context, key string, fetchDB func() (int64, error)) (int64, error) {
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := fetchDB()
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, countCacheExpiration)
	return realCount, nil
}
