package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/minio"
	"Wayfarer/internal/repository"
	"context"

	"golang.org/x/sync/errgroup"
)

type SearchService interface {
	Search(ctx context.Context, keyword string, viewerID uint64) (*dto.SearchResultDTO, error)
}

type SearchServiceImpl struct {
	momentRepo  repository.MomentPostRepo
	teamRepo    repository.TeamPostRepo
	userRepo    repository.UserRepo
	followRepo  repository.UserFollowRepo
	postService PostService
	teamService TeamService
}

func NewSearchService(
	momentRepo repository.MomentPostRepo,
	teamRepo repository.TeamPostRepo,
	userRepo repository.UserRepo,
	followRepo repository.UserFollowRepo,
	postService PostService,
	teamService TeamService,
) SearchService {
	return &SearchServiceImpl{
		momentRepo:  momentRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		followRepo:  followRepo,
		postService: postService,
		teamService: teamService,
	}
}

// Search 关键词三路模糊检索，viewerID 为 0 时关系位一律为 false
func (s *SearchServiceImpl) Search(ctx context.Context, keyword string, viewerID uint64) (*dto.SearchResultDTO, error) {
	if keyword == "" {
		return nil, ErrParamInvalid
	}

	result := &dto.SearchResultDTO{
		MomentPosts: make([]*dto.MomentPostDTO, 0),
		TeamPosts:   make([]*dto.TeamPostDTO, 0),
		Users:       make([]*dto.UserSearchDTO, 0),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		posts, err := s.momentRepo.Search(gCtx, keyword)
		if err != nil {
			return err
		}
		enriched, err := s.postService.EnrichMomentPosts(gCtx, posts, viewerID)
		if err != nil {
			return err
		}
		result.MomentPosts = enriched
		return nil
	})

	g.Go(func() error {
		posts, err := s.teamRepo.Search(gCtx, keyword)
		if err != nil {
			return err
		}
		enriched, err := s.teamService.EnrichTeamPosts(gCtx, posts)
		if err != nil {
			return err
		}
		for _, item := range enriched {
			members, err := s.teamService.GetTeamMembers(gCtx, item.PostID)
			if err != nil {
				return err
			}
			item.Members = members
		}
		result.TeamPosts = enriched
		return nil
	})

	g.Go(func() error {
		users, err := s.userRepo.SearchUsers(gCtx, keyword)
		if err != nil {
			return err
		}

		userIDs := make([]uint64, 0, len(users))
		for _, user := range users {
			userIDs = append(userIDs, user.UserID)
		}
		followedMap := make(map[uint64]bool)
		if viewerID != 0 {
			followedMap, err = s.followRepo.BatchGetIsFollowed(gCtx, viewerID, userIDs)
			if err != nil {
				return err
			}
		}

		items := make([]*dto.UserSearchDTO, 0, len(users))
		for _, user := range users {
			items = append(items, &dto.UserSearchDTO{
				UserID:     user.UserID,
				Username:   user.Username,
				Nickname:   user.Nickname,
				AvatarURL:  minio.GetPublicURL(user.AvatarURL),
				Bio:        user.Bio,
				RegionName: user.RegionName,
				IsFollowed: followedMap[user.UserID],
			})
		}
		result.Users = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
