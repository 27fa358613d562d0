package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moderationFixture struct {
	moderationRepo *fakeModerationRepo
	momentRepo     *fakeMomentRepo
	teamRepo       *fakeTeamRepo
	extraRepo      *fakeExtraRepo
	svc            ModerationService
}

func newModerationFixture() *moderationFixture {
	f := &moderationFixture{
		moderationRepo: &fakeModerationRepo{},
		momentRepo:     &fakeMomentRepo{posts: map[uint64]*model.MomentPost{}},
		teamRepo:       &fakeTeamRepo{posts: map[uint64]*model.TeamPost{}},
		extraRepo: &fakeExtraRepo{
			likeCounts:    map[extraKey]int64{},
			commentCounts: map[extraKey]int64{},
			joinCounts:    map[uint64]int64{},
		},
	}
	f.svc = NewModerationService(f.moderationRepo, f.momentRepo, f.teamRepo, f.extraRepo, &fakeAdminRepo{}, &fakeCommentRepo{})
	return f
}

func TestBatchAudit(t *testing.T) {
	f := newModerationFixture()

	err := f.svc.BatchAudit(context.Background(), 99, &dto.BatchAuditDTO{
		PostIDs: []uint64{1, 2, 3},
		Type:    "dynamic",
		Status:  consts.PostStatusApproved,
	})
	require.NoError(t, err)

	require.Len(t, f.moderationRepo.auditCalls, 1)
	call := f.moderationRepo.auditCalls[0]
	assert.Equal(t, model.PostKindMoment, call.kind)
	assert.Equal(t, []uint64{1, 2, 3}, call.postIDs)
	assert.Equal(t, consts.PostStatusApproved, call.status)
	assert.Equal(t, uint64(99), call.adminID)
}

func TestBatchAudit_UnknownType(t *testing.T) {
	f := newModerationFixture()

	err := f.svc.BatchAudit(context.Background(), 99, &dto.BatchAuditDTO{
		PostIDs: []uint64{1},
		Type:    "video",
		Status:  consts.PostStatusApproved,
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
	assert.Empty(t, f.moderationRepo.auditCalls)
}

func TestBatchDelete(t *testing.T) {
	f := newModerationFixture()

	err := f.svc.BatchDelete(context.Background(), &dto.BatchDeleteDTO{
		PostIDs: []uint64{4, 5},
		Type:    "team_activity",
	})
	require.NoError(t, err)
	require.Len(t, f.moderationRepo.deleteCalls, 1)
	assert.Equal(t, model.PostKindTeam, f.moderationRepo.deleteCalls[0].kind)
}

// 推荐位条目携带入选时刻的互动计数快照
func TestRecommend_SnapshotCounts(t *testing.T) {
	f := newModerationFixture()
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2, Status: consts.PostStatusApproved}
	f.extraRepo.likeCounts[extraKey{model.PostKindTeam, 20}] = 7
	f.extraRepo.commentCounts[extraKey{model.PostKindTeam, 20}] = 4
	f.extraRepo.joinCounts[20] = 3

	err := f.svc.Recommend(context.Background(), &dto.RecommendDTO{PostID: 20, Type: "team_activity"})
	require.NoError(t, err)

	rec := f.moderationRepo.recommendations[recommendKey{20, model.PostKindTeam}]
	require.NotNil(t, rec)
	assert.Equal(t, "team", rec.Type)
	assert.Equal(t, uint64(2), rec.UserID)
	assert.Equal(t, int64(7), rec.LikeCount)
	assert.Equal(t, int64(4), rec.CommentCount)
	assert.Equal(t, int64(3), rec.JoinCount)
}

func TestRecommend_Duplicate(t *testing.T) {
	f := newModerationFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2, Status: consts.PostStatusApproved}

	recDTO := &dto.RecommendDTO{PostID: 10, Type: "dynamic"}
	require.NoError(t, f.svc.Recommend(context.Background(), recDTO))
	assert.ErrorIs(t, f.svc.Recommend(context.Background(), recDTO), ErrRecommendExist)
}

// 未过审的帖子不允许入推荐位
func TestRecommend_NotApproved(t *testing.T) {
	f := newModerationFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2, Status: consts.PostStatusPending}

	err := f.svc.Recommend(context.Background(), &dto.RecommendDTO{PostID: 10, Type: "dynamic"})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestCancelRecommend(t *testing.T) {
	f := newModerationFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2, Status: consts.PostStatusApproved}
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.CancelRecommend(ctx, &dto.RecommendDTO{PostID: 10, Type: "dynamic"}), ErrRecommendNotFound)

	require.NoError(t, f.svc.Recommend(ctx, &dto.RecommendDTO{PostID: 10, Type: "dynamic"}))
	require.NoError(t, f.svc.CancelRecommend(ctx, &dto.RecommendDTO{PostID: 10, Type: "dynamic"}))
	assert.Empty(t, f.moderationRepo.recommendations)
}

func TestListRecommendations_CarriesImages(t *testing.T) {
	f := newModerationFixture()
	f.moderationRepo.recommendations = map[recommendKey]*model.Recommendation{
		{postID: 7, kind: model.PostKindMoment}: {PostID: 7, Type: "moment"},
	}
	f.extraRepo.images = map[extraKey][]string{
		{model.PostKindMoment, 7}: {"a.jpg", "b.jpg"},
	}

	items, err := f.svc.ListRecommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint64(7), items[0].PostID)
	assert.Equal(t, "moment", items[0].Type)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, items[0].Images)
}

func TestRemoveComment_InvalidKind(t *testing.T) {
	f := newModerationFixture()
	err := f.svc.RemoveComment(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrParamInvalid)
}
