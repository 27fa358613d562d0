package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/minio"
	"Wayfarer/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type PostService interface {
	CreateMomentPost(ctx context.Context, userID uint64, baseDTO *dto.MomentPostBaseDTO) error
	UpdateMomentPost(ctx context.Context, userID uint64, baseDTO *dto.MomentPostBaseDTO) error
	DeleteMomentPost(ctx context.Context, userID, postID uint64) error
	GetMomentPost(ctx context.Context, postID, viewerID uint64) (*dto.MomentPostDTO, error)
	GetMomentFeed(ctx context.Context, page, limit int, viewerID uint64, onlyFollowed bool) (*repository.Page[*dto.MomentPostDTO], error)
	GetUserMomentPosts(ctx context.Context, targetID, viewerID uint64) ([]*dto.MomentPostDTO, error)
	GetLikedMomentPosts(ctx context.Context, userID uint64) ([]*dto.MomentPostDTO, error)
	EnrichMomentPosts(ctx context.Context, posts []*model.MomentPost, viewerID uint64) ([]*dto.MomentPostDTO, error)
	DeleteImages(ctx context.Context, imageIDs []uint64) error
}

type PostServiceImpl struct {
	momentRepo  repository.MomentPostRepo
	extraRepo   repository.PostExtraRepo
	likeRepo    repository.LikeRepo
	followRepo  repository.UserFollowRepo
	userService UserService
}

func NewPostService(
	momentRepo repository.MomentPostRepo,
	extraRepo repository.PostExtraRepo,
	likeRepo repository.LikeRepo,
	followRepo repository.UserFollowRepo,
	userService UserService,
) PostService {
	return &PostServiceImpl{
		momentRepo:  momentRepo,
		extraRepo:   extraRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
		userService: userService,
	}
}

func (s *PostServiceImpl) CreateMomentPost(ctx context.Context, userID uint64, baseDTO *dto.MomentPostBaseDTO) error {
	post := &model.MomentPost{
		UserID:  userID,
		Content: baseDTO.Content,
		Status:  consts.PostStatusPending,
	}
	return s.momentRepo.Create(ctx, post, baseDTO.Images)
}

// UpdateMomentPost 编辑后回到待审核状态
func (s *PostServiceImpl) UpdateMomentPost(ctx context.Context, userID uint64, baseDTO *dto.MomentPostBaseDTO) error {
	post, err := s.momentRepo.GetByID(ctx, baseDTO.DynamicPostID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return UnauthorizedError
	}

	post.Content = baseDTO.Content
	post.Status = consts.PostStatusPending
	return s.momentRepo.Update(ctx, post, baseDTO.Images)
}

func (s *PostServiceImpl) DeleteMomentPost(ctx context.Context, userID, postID uint64) error {
	post, err := s.momentRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return UnauthorizedError
	}
	return s.momentRepo.Delete(ctx, postID)
}

// GetMomentPost 详情页不过滤状态，作者要能看到自己的待审核与驳回帖
func (s *PostServiceImpl) GetMomentPost(ctx context.Context, postID, viewerID uint64) (*dto.MomentPostDTO, error) {
	post, err := s.momentRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	enriched, err := s.EnrichMomentPosts(ctx, []*model.MomentPost{post}, viewerID)
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

func (s *PostServiceImpl) GetMomentFeed(ctx context.Context, page, limit int, viewerID uint64, onlyFollowed bool) (*repository.Page[*dto.MomentPostDTO], error) {
	var authorIDs []uint64
	if onlyFollowed {
		ids, err := s.followRepo.GetFollowingIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		// 没有关注任何人时不必下探数据库
		if len(ids) == 0 {
			return repository.EmptyPage[*dto.MomentPostDTO](page, limit), nil
		}
		authorIDs = ids
	}

	postPage, err := s.momentRepo.FeedPage(ctx, page, limit, authorIDs)
	if err != nil {
		return nil, err
	}

	enriched, err := s.EnrichMomentPosts(ctx, postPage.List, viewerID)
	if err != nil {
		return nil, err
	}
	return &repository.Page[*dto.MomentPostDTO]{
		List:        enriched,
		PageSize:    postPage.PageSize,
		TotalCount:  postPage.TotalCount,
		TotalPages:  postPage.TotalPages,
		CurrentPage: postPage.CurrentPage,
	}, nil
}

func (s *PostServiceImpl) GetUserMomentPosts(ctx context.Context, targetID, viewerID uint64) ([]*dto.MomentPostDTO, error) {
	posts, err := s.momentRepo.GetByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return s.EnrichMomentPosts(ctx, posts, viewerID)
}

func (s *PostServiceImpl) GetLikedMomentPosts(ctx context.Context, userID uint64) ([]*dto.MomentPostDTO, error) {
	posts, err := s.momentRepo.GetLikedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.EnrichMomentPosts(ctx, posts, userID)
}

// EnrichMomentPosts 为一批动态帖拼装图片、点赞/评论数与观察者关系位。
// viewerID 为 0 时关系位一律为 false。
func (s *PostServiceImpl) EnrichMomentPosts(ctx context.Context, posts []*model.MomentPost, viewerID uint64) ([]*dto.MomentPostDTO, error) {
	dtos := make([]*dto.MomentPostDTO, len(posts))
	if len(posts) == 0 {
		return dtos, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	authorIDs := make([]uint64, 0, len(posts))
	for i, post := range posts {
		dtos[i] = &dto.MomentPostDTO{
			DynamicPostID: post.DynamicPostID,
			Content:       post.Content,
			Status:        post.Status,
			CreatedAt:     post.CreatedAt.Format(time.DateTime),
			UserID:        post.UserID,
		}
		postIDs = append(postIDs, post.DynamicPostID)
		authorIDs = append(authorIDs, post.UserID)
	}

	g, gCtx := errgroup.WithContext(ctx)

	for i := range dtos {
		item := dtos[i]
		postID := posts[i].DynamicPostID
		g.Go(func() error {
			urls, err := s.extraRepo.GetImages(gCtx, model.PostKindMoment, postID)
			if err != nil {
				return err
			}
			images := make([]string, 0, len(urls))
			for _, url := range urls {
				images = append(images, minio.GetPublicURL(url))
			}
			item.Images = images
			return nil
		})
		g.Go(func() error {
			count, err := s.extraRepo.GetLikeCount(gCtx, model.PostKindMoment, postID)
			if err != nil {
				return err
			}
			item.LikeCount = count
			return nil
		})
		g.Go(func() error {
			count, err := s.extraRepo.GetCommentCount(gCtx, model.PostKindMoment, postID)
			if err != nil {
				return err
			}
			item.CommentCount = count
			return nil
		})
	}

	var cards map[uint64]*dto.UserCardDTO
	var likedMap, followedMap map[uint64]bool

	g.Go(func() error {
		mp, err := s.userService.GetUserCardsByIds(gCtx, authorIDs)
		if err != nil {
			return err
		}
		cards = mp
		return nil
	})
	if viewerID != 0 {
		g.Go(func() error {
			mp, err := s.likeRepo.BatchGetIsLiked(gCtx, model.PostKindMoment, viewerID, postIDs)
			if err != nil {
				return err
			}
			likedMap = mp
			return nil
		})
		g.Go(func() error {
			mp, err := s.followRepo.BatchGetIsFollowed(gCtx, viewerID, authorIDs)
			if err != nil {
				return err
			}
			followedMap = mp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, item := range dtos {
		if card := cards[item.UserID]; card != nil {
			item.Nickname = card.Nickname
			item.AvatarURL = card.AvatarURL
		}
		item.IsLiked = likedMap[item.DynamicPostID]
		item.IsFollowed = followedMap[item.UserID]
	}
	return dtos, nil
}

func (s *PostServiceImpl) DeleteImages(ctx context.Context, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return ErrParamInvalid
	}
	return s.extraRepo.DeleteImages(ctx, model.PostKindMoment, imageIDs)
}
