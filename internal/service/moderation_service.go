package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type ModerationService interface {
	BatchAudit(ctx context.Context, adminID uint64, auditDTO *dto.BatchAuditDTO) error
	BatchDelete(ctx context.Context, deleteDTO *dto.BatchDeleteDTO) error
	PageMomentPosts(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.MomentPost], error)
	PageTeamPosts(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.TeamPost], error)
	Recommend(ctx context.Context, recDTO *dto.RecommendDTO) error
	CancelRecommend(ctx context.Context, recDTO *dto.RecommendDTO) error
	PageRecommendations(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.Recommendation], error)
	ListRecommendations(ctx context.Context) ([]*dto.RecommendedPostDTO, error)
	PageApprovalRecords(ctx context.Context, query repository.PageQuery) (*repository.Page[*dto.ApprovalRecordDTO], error)
	DeleteApprovalRecords(ctx context.Context, ids []uint64) error
	PageMomentComments(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.MomentPostComment], error)
	PageTeamComments(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.TeamPostComment], error)
	RemoveComment(ctx context.Context, kind model.PostKind, commentID uint64) error
}

type ModerationServiceImpl struct {
	moderationRepo repository.ModerationRepo
	momentRepo     repository.MomentPostRepo
	teamRepo       repository.TeamPostRepo
	extraRepo      repository.PostExtraRepo
	adminRepo      repository.AdminRepo
	commentRepo    repository.CommentRepo
}

func NewModerationService(
	moderationRepo repository.ModerationRepo,
	momentRepo repository.MomentPostRepo,
	teamRepo repository.TeamPostRepo,
	extraRepo repository.PostExtraRepo,
	adminRepo repository.AdminRepo,
	commentRepo repository.CommentRepo,
) ModerationService {
	return &ModerationServiceImpl{
		moderationRepo: moderationRepo,
		momentRepo:     momentRepo,
		teamRepo:       teamRepo,
		extraRepo:      extraRepo,
		adminRepo:      adminRepo,
		commentRepo:    commentRepo,
	}
}

// kindFromAPIType 后台接口的帖子类型参数与内部种类的对照
func kindFromAPIType(t string) model.PostKind {
	switch t {
	case "dynamic":
		return model.PostKindMoment
	case "team_activity":
		return model.PostKindTeam
	}
	return 0
}

func (s *ModerationServiceImpl) BatchAudit(ctx context.Context, adminID uint64, auditDTO *dto.BatchAuditDTO) error {
	kind := kindFromAPIType(auditDTO.Type)
	if !kind.Valid() {
		return ErrParamInvalid
	}
	return s.moderationRepo.BatchUpdateStatus(ctx, kind, auditDTO.PostIDs, auditDTO.Status, adminID)
}

func (s *ModerationServiceImpl) BatchDelete(ctx context.Context, deleteDTO *dto.BatchDeleteDTO) error {
	kind := kindFromAPIType(deleteDTO.Type)
	if !kind.Valid() {
		return ErrParamInvalid
	}
	return s.moderationRepo.BatchDeletePosts(ctx, kind, deleteDTO.PostIDs)
}

func (s *ModerationServiceImpl) PageMomentPosts(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.MomentPost], error) {
	return s.moderationRepo.PageMomentPosts(ctx, query)
}

func (s *ModerationServiceImpl) PageTeamPosts(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.TeamPost], error) {
	return s.moderationRepo.PageTeamPosts(ctx, query)
}

// Recommend 帖子入推荐位，互动计数取入选时刻的快照
func (s *ModerationServiceImpl) Recommend(ctx context.Context, recDTO *dto.RecommendDTO) error {
	kind := kindFromAPIType(recDTO.Type)
	if !kind.Valid() {
		return ErrParamInvalid
	}

	var authorID uint64
	var status int8
	if kind == model.PostKindMoment {
		post, err := s.momentRepo.GetByID(ctx, recDTO.PostID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}
		authorID, status = post.UserID, post.Status
	} else {
		post, err := s.teamRepo.GetByID(ctx, recDTO.PostID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}
		authorID, status = post.UserID, post.Status
	}
	if status != consts.PostStatusApproved {
		return ErrParamInvalid
	}

	exist, err := s.moderationRepo.GetRecommendation(ctx, recDTO.PostID, kind)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrRecommendExist
	}

	rec := &model.Recommendation{
		PostID: recDTO.PostID,
		Type:   kind.ApprovalType(),
		UserID: authorID,
		Status: consts.PostStatusApproved,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.extraRepo.GetLikeCount(gCtx, kind, recDTO.PostID)
		if err != nil {
			return err
		}
		rec.LikeCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.extraRepo.GetCommentCount(gCtx, kind, recDTO.PostID)
		if err != nil {
			return err
		}
		rec.CommentCount = count
		return nil
	})
	if kind == model.PostKindTeam {
		g.Go(func() error {
			count, err := s.extraRepo.GetJoinCount(gCtx, recDTO.PostID)
			if err != nil {
				return err
			}
			rec.JoinCount = count
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	return s.moderationRepo.CreateRecommendation(ctx, rec)
}

func (s *ModerationServiceImpl) CancelRecommend(ctx context.Context, recDTO *dto.RecommendDTO) error {
	kind := kindFromAPIType(recDTO.Type)
	if !kind.Valid() {
		return ErrParamInvalid
	}
	exist, err := s.moderationRepo.GetRecommendation(ctx, recDTO.PostID, kind)
	if err != nil {
		return err
	}
	if exist == nil {
		return ErrRecommendNotFound
	}
	return s.moderationRepo.DeleteRecommendation(ctx, recDTO.PostID, kind)
}

func (s *ModerationServiceImpl) PageRecommendations(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.Recommendation], error) {
	return s.moderationRepo.PageRecommendations(ctx, query)
}

// ListRecommendations 前台推荐位，每个条目带当前配图
func (s *ModerationServiceImpl) ListRecommendations(ctx context.Context) ([]*dto.RecommendedPostDTO, error) {
	recs, err := s.moderationRepo.ListRecommendations(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.RecommendedPostDTO, len(recs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, rec := range recs {
		i, rec := i, rec
		g.Go(func() error {
			kind := model.KindFromApprovalType(rec.Type)
			urls, err := s.extraRepo.GetImages(gCtx, kind, rec.PostID)
			if err != nil {
				return err
			}
			items[i] = &dto.RecommendedPostDTO{
				PostID: rec.PostID,
				Type:   rec.Type,
				Images: urls,
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ModerationServiceImpl) PageApprovalRecords(ctx context.Context, query repository.PageQuery) (*repository.Page[*dto.ApprovalRecordDTO], error) {
	recordPage, err := s.moderationRepo.PageApprovalRecords(ctx, query)
	if err != nil {
		return nil, err
	}

	adminIDs := make([]uint64, 0, len(recordPage.List))
	for _, record := range recordPage.List {
		adminIDs = append(adminIDs, record.AdminID)
	}
	admins, err := s.adminRepo.GetAdminByIds(ctx, adminIDs)
	if err != nil {
		return nil, err
	}
	adminNames := make(map[uint64]string, len(admins))
	for _, admin := range admins {
		adminNames[admin.AdminID] = admin.Nickname
	}

	items := make([]*dto.ApprovalRecordDTO, 0, len(recordPage.List))
	for _, record := range recordPage.List {
		items = append(items, &dto.ApprovalRecordDTO{
			RecordID:  record.ID,
			PostID:    record.PostID,
			Type:      record.Type,
			Status:    record.Status,
			AdminID:   record.AdminID,
			AdminName: adminNames[record.AdminID],
			CreatedAt: record.CreatedAt.Format(time.DateTime),
		})
	}
	return &repository.Page[*dto.ApprovalRecordDTO]{
		List:        items,
		PageSize:    recordPage.PageSize,
		TotalCount:  recordPage.TotalCount,
		TotalPages:  recordPage.TotalPages,
		CurrentPage: recordPage.CurrentPage,
	}, nil
}

func (s *ModerationServiceImpl) DeleteApprovalRecords(ctx context.Context, ids []uint64) error {
	return s.moderationRepo.DeleteApprovalRecords(ctx, ids)
}

func (s *ModerationServiceImpl) PageMomentComments(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.MomentPostComment], error) {
	return s.commentRepo.PageMomentComments(ctx, query)
}

func (s *ModerationServiceImpl) PageTeamComments(ctx context.Context, query repository.PageQuery) (*repository.Page[*model.TeamPostComment], error) {
	return s.commentRepo.PageTeamComments(ctx, query)
}

// RemoveComment 后台删除评论，不做归属校验
func (s *ModerationServiceImpl) RemoveComment(ctx context.Context, kind model.PostKind, commentID uint64) error {
	if !kind.Valid() {
		return ErrParamInvalid
	}
	return s.commentRepo.DeleteByID(ctx, kind, commentID)
}
