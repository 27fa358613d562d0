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

type TeamService interface {
	CreateTeamPost(ctx context.Context, userID uint64, baseDTO *dto.TeamPostBaseDTO) error
	UpdateTeamPost(ctx context.Context, userID uint64, baseDTO *dto.TeamPostBaseDTO) error
	DeleteTeamPost(ctx context.Context, userID, postID uint64) error
	GetTeamPost(ctx context.Context, postID, viewerID uint64) (*dto.TeamPostDTO, error)
	GetTeamFeed(ctx context.Context, page, limit int, themeID uint64) (*repository.Page[*dto.TeamPostDTO], error)
	GetUserTeamPosts(ctx context.Context, targetID uint64) ([]*dto.TeamPostDTO, error)
	GetJoinedTeamPosts(ctx context.Context, userID uint64) ([]*dto.TeamPostDTO, error)
	GetLikedTeamPosts(ctx context.Context, userID uint64) ([]*dto.TeamPostDTO, error)
	JoinTeam(ctx context.Context, userID, postID uint64) error
	LeaveTeam(ctx context.Context, userID, postID uint64) error
	GetTeamMembers(ctx context.Context, postID uint64) ([]*dto.UserCardDTO, error)
	EnrichTeamPosts(ctx context.Context, posts []*model.TeamPost) ([]*dto.TeamPostDTO, error)
	DeleteImages(ctx context.Context, imageIDs []uint64) error
	DeleteItineraries(ctx context.Context, postIDs []uint64) error
}

type TeamServiceImpl struct {
	teamRepo        repository.TeamPostRepo
	extraRepo       repository.PostExtraRepo
	likeRepo        repository.LikeRepo
	participantRepo repository.ParticipantRepo
	userService     UserService
}

func NewTeamService(
	teamRepo repository.TeamPostRepo,
	extraRepo repository.PostExtraRepo,
	likeRepo repository.LikeRepo,
	participantRepo repository.ParticipantRepo,
	userService UserService,
) TeamService {
	return &TeamServiceImpl{
		teamRepo:        teamRepo,
		extraRepo:       extraRepo,
		likeRepo:        likeRepo,
		participantRepo: participantRepo,
		userService:     userService,
	}
}

func (s *TeamServiceImpl) CreateTeamPost(ctx context.Context, userID uint64, baseDTO *dto.TeamPostBaseDTO) error {
	post := &model.TeamPost{
		UserID:            userID,
		Title:             baseDTO.Title,
		Description:       baseDTO.Description,
		StartLocation:     baseDTO.StartLocation,
		EndLocation:       baseDTO.EndLocation,
		DurationDay:       baseDTO.DurationDay,
		TeamSize:          baseDTO.TeamSize,
		EstimatedExpense:  baseDTO.EstimatedExpense,
		GenderRequirement: baseDTO.GenderRequirement,
		PaymentMethod:     baseDTO.PaymentMethod,
		ThemeID:           baseDTO.ThemeID,
		Status:            consts.PostStatusPending,
	}
	itineraryURL := ""
	if baseDTO.ItineraryURL != nil {
		itineraryURL = *baseDTO.ItineraryURL
	}
	return s.teamRepo.Create(ctx, post, baseDTO.Images, itineraryURL)
}

// UpdateTeamPost 编辑后回到待审核状态
func (s *TeamServiceImpl) UpdateTeamPost(ctx context.Context, userID uint64, baseDTO *dto.TeamPostBaseDTO) error {
	post, err := s.teamRepo.GetByID(ctx, baseDTO.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return UnauthorizedError
	}

	post.Title = baseDTO.Title
	post.Description = baseDTO.Description
	post.StartLocation = baseDTO.StartLocation
	post.EndLocation = baseDTO.EndLocation
	post.DurationDay = baseDTO.DurationDay
	post.TeamSize = baseDTO.TeamSize
	post.EstimatedExpense = baseDTO.EstimatedExpense
	post.GenderRequirement = baseDTO.GenderRequirement
	post.PaymentMethod = baseDTO.PaymentMethod
	post.ThemeID = baseDTO.ThemeID
	post.Status = consts.PostStatusPending
	return s.teamRepo.Update(ctx, post, baseDTO.Images, baseDTO.ItineraryURL)
}

func (s *TeamServiceImpl) DeleteTeamPost(ctx context.Context, userID, postID uint64) error {
	post, err := s.teamRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return UnauthorizedError
	}
	return s.teamRepo.Delete(ctx, postID)
}

// GetTeamPost 详情页不过滤状态，附带成员、计数与观察者点赞位
func (s *TeamServiceImpl) GetTeamPost(ctx context.Context, postID, viewerID uint64) (*dto.TeamPostDTO, error) {
	post, err := s.teamRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	enriched, err := s.EnrichTeamPosts(ctx, []*model.TeamPost{post})
	if err != nil {
		return nil, err
	}
	item := enriched[0]

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.extraRepo.GetLikeCount(gCtx, model.PostKindTeam, postID)
		if err != nil {
			return err
		}
		item.LikeCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.extraRepo.GetCommentCount(gCtx, model.PostKindTeam, postID)
		if err != nil {
			return err
		}
		item.CommentCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.extraRepo.GetJoinCount(gCtx, postID)
		if err != nil {
			return err
		}
		item.JoinCount = count
		return nil
	})
	g.Go(func() error {
		members, err := s.GetTeamMembers(gCtx, postID)
		if err != nil {
			return err
		}
		item.Members = members
		return nil
	})
	if viewerID != 0 {
		g.Go(func() error {
			liked, err := s.likeRepo.Exists(gCtx, model.PostKindTeam, viewerID, postID)
			if err != nil {
				return err
			}
			item.IsLiked = liked
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return item, nil
}

// GetTeamFeed 列表页只拼装作者信息与图片
func (s *TeamServiceImpl) GetTeamFeed(ctx context.Context, page, limit int, themeID uint64) (*repository.Page[*dto.TeamPostDTO], error) {
	postPage, err := s.teamRepo.FeedPage(ctx, page, limit, themeID)
	if err != nil {
		return nil, err
	}

	enriched, err := s.EnrichTeamPosts(ctx, postPage.List)
	if err != nil {
		return nil, err
	}
	return &repository.Page[*dto.TeamPostDTO]{
		List:        enriched,
		PageSize:    postPage.PageSize,
		TotalCount:  postPage.TotalCount,
		TotalPages:  postPage.TotalPages,
		CurrentPage: postPage.CurrentPage,
	}, nil
}

func (s *TeamServiceImpl) GetUserTeamPosts(ctx context.Context, targetID uint64) ([]*dto.TeamPostDTO, error) {
	posts, err := s.teamRepo.GetByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return s.EnrichTeamPosts(ctx, posts)
}

func (s *TeamServiceImpl) GetJoinedTeamPosts(ctx context.Context, userID uint64) ([]*dto.TeamPostDTO, error) {
	posts, err := s.teamRepo.GetJoinedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.EnrichTeamPosts(ctx, posts)
}

func (s *TeamServiceImpl) GetLikedTeamPosts(ctx context.Context, userID uint64) ([]*dto.TeamPostDTO, error) {
	posts, err := s.teamRepo.GetLikedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.EnrichTeamPosts(ctx, posts)
}

func (s *TeamServiceImpl) JoinTeam(ctx context.Context, userID, postID uint64) error {
	post, err := s.teamRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	joined, err := s.participantRepo.Exists(ctx, userID, postID)
	if err != nil {
		return err
	}
	if joined {
		return ErrAlreadyJoined
	}

	count, err := s.participantRepo.CountByPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.TeamSize > 0 && count >= int64(post.TeamSize) {
		return ErrTeamFull
	}

	err = s.participantRepo.Create(ctx, &model.TeamParticipant{
		UserID: userID,
		PostID: postID,
	})
	if isDuplicateError(err) {
		return ErrAlreadyJoined
	}
	return err
}

func (s *TeamServiceImpl) LeaveTeam(ctx context.Context, userID, postID uint64) error {
	joined, err := s.participantRepo.Exists(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !joined {
		return ErrNotJoined
	}
	return s.participantRepo.Delete(ctx, userID, postID)
}

func (s *TeamServiceImpl) GetTeamMembers(ctx context.Context, postID uint64) ([]*dto.UserCardDTO, error) {
	memberIDs, err := s.participantRepo.GetMemberIDs(ctx, postID)
	if err != nil {
		return nil, err
	}
	cards, err := s.userService.GetUserCardsByIds(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	members := make([]*dto.UserCardDTO, 0, len(memberIDs))
	for _, id := range memberIDs {
		if card := cards[id]; card != nil {
			members = append(members, card)
		}
	}
	return members, nil
}

func (s *TeamServiceImpl) EnrichTeamPosts(ctx context.Context, posts []*model.TeamPost) ([]*dto.TeamPostDTO, error) {
	dtos := make([]*dto.TeamPostDTO, len(posts))
	if len(posts) == 0 {
		return dtos, nil
	}

	authorIDs := make([]uint64, 0, len(posts))
	for i, post := range posts {
		dtos[i] = &dto.TeamPostDTO{
			PostID:            post.PostID,
			Title:             post.Title,
			Description:       post.Description,
			StartLocation:     post.StartLocation,
			EndLocation:       post.EndLocation,
			DurationDay:       post.DurationDay,
			TeamSize:          post.TeamSize,
			EstimatedExpense:  post.EstimatedExpense,
			GenderRequirement: post.GenderRequirement,
			PaymentMethod:     post.PaymentMethod,
			ThemeID:           post.ThemeID,
			Status:            post.Status,
			CreatedAt:         post.CreatedAt.Format(time.DateTime),
			UserID:            post.UserID,
		}
		authorIDs = append(authorIDs, post.UserID)
	}

	g, gCtx := errgroup.WithContext(ctx)

	for i := range dtos {
		item := dtos[i]
		postID := posts[i].PostID
		g.Go(func() error {
			urls, err := s.extraRepo.GetImages(gCtx, model.PostKindTeam, postID)
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
			url, err := s.extraRepo.GetFirstItineraryImage(gCtx, postID)
			if err != nil {
				return err
			}
			if url != "" {
				publicURL := minio.GetPublicURL(url)
				item.ItineraryURL = &publicURL
			}
			return nil
		})
	}

	var cards map[uint64]*dto.UserCardDTO
	g.Go(func() error {
		mp, err := s.userService.GetUserCardsByIds(gCtx, authorIDs)
		if err != nil {
			return err
		}
		cards = mp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, item := range dtos {
		if card := cards[item.UserID]; card != nil {
			item.Nickname = card.Nickname
			item.AvatarURL = card.AvatarURL
		}
	}
	return dtos, nil
}

func (s *TeamServiceImpl) DeleteImages(ctx context.Context, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return ErrParamInvalid
	}
	return s.extraRepo.DeleteImages(ctx, model.PostKindTeam, imageIDs)
}

func (s *TeamServiceImpl) DeleteItineraries(ctx context.Context, postIDs []uint64) error {
	if len(postIDs) == 0 {
		return ErrParamInvalid
	}
	return s.extraRepo.DeleteItineraries(ctx, postIDs)
}
