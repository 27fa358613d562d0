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

type searchFixture struct {
	momentRepo *fakeMomentRepo
	teamRepo   *fakeTeamRepo
	userRepo   *fakeUserRepo
	followRepo *fakeFollowRepo
	svc        SearchService
}

func newSearchFixture() *searchFixture {
	f := &searchFixture{
		momentRepo: &fakeMomentRepo{posts: map[uint64]*model.MomentPost{}},
		teamRepo:   &fakeTeamRepo{posts: map[uint64]*model.TeamPost{}},
		userRepo:   &fakeUserRepo{users: map[uint64]*model.User{}},
		followRepo: &fakeFollowRepo{},
	}
	extraRepo := &fakeExtraRepo{}
	cards := &fakeUserCards{cards: map[uint64]*dto.UserCardDTO{
		2: {UserID: 2, Nickname: "Traveler"},
	}}
	likeRepo := &fakeLikeRepo{}
	postSvc := NewPostService(f.momentRepo, extraRepo, likeRepo, f.followRepo, cards)
	teamSvc := NewTeamService(f.teamRepo, extraRepo, likeRepo, &fakeParticipantRepo{}, cards)
	f.svc = NewSearchService(f.momentRepo, f.teamRepo, f.userRepo, f.followRepo, postSvc, teamSvc)
	return f
}

func TestSearch_EmptyKeyword(t *testing.T) {
	f := newSearchFixture()

	_, err := f.svc.Search(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestSearch_ThreeWayResult(t *testing.T) {
	f := newSearchFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2, Content: "川西自驾", Status: consts.PostStatusApproved}
	f.momentRepo.searchHits = []uint64{10}
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2, Title: "川西拼车", Status: consts.PostStatusApproved}
	f.teamRepo.searchHits = []uint64{20}
	f.userRepo.users[2] = &model.User{UserID: 2, Username: "chuanxi", Nickname: "Traveler"}
	f.userRepo.searchHits = []uint64{2}

	result, err := f.svc.Search(context.Background(), "川西", 1)
	require.NoError(t, err)

	require.Len(t, result.MomentPosts, 1)
	assert.Equal(t, uint64(10), result.MomentPosts[0].DynamicPostID)
	require.Len(t, result.TeamPosts, 1)
	assert.Equal(t, uint64(20), result.TeamPosts[0].PostID)
	assert.NotNil(t, result.TeamPosts[0].Members)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "chuanxi", result.Users[0].Username)
}

func TestSearch_FollowFlagPerViewer(t *testing.T) {
	f := newSearchFixture()
	f.userRepo.users[2] = &model.User{UserID: 2, Username: "chuanxi"}
	f.userRepo.searchHits = []uint64{2}
	f.followRepo.follows = map[followPair]bool{{1, 2}: true}

	result, err := f.svc.Search(context.Background(), "chuanxi", 1)
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.True(t, result.Users[0].IsFollowed)

	// 游客视角一律 false
	result, err = f.svc.Search(context.Background(), "chuanxi", 0)
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.False(t, result.Users[0].IsFollowed)
}

func TestSearch_NoHits(t *testing.T) {
	f := newSearchFixture()

	result, err := f.svc.Search(context.Background(), "nothing", 0)
	require.NoError(t, err)
	assert.Empty(t, result.MomentPosts)
	assert.Empty(t, result.TeamPosts)
	assert.Empty(t, result.Users)
}

// 搜索结果同样只包含已过审的帖子
func TestSearch_SkipsUnapprovedPosts(t *testing.T) {
	f := newSearchFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2, Content: "川西自驾", Status: consts.PostStatusApproved}
	f.momentRepo.posts[11] = &model.MomentPost{DynamicPostID: 11, UserID: 2, Content: "川西摄影", Status: consts.PostStatusPending}
	f.momentRepo.searchHits = []uint64{10, 11}
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2, Title: "川西拼车", Status: consts.PostStatusRejected}
	f.teamRepo.searchHits = []uint64{20}

	result, err := f.svc.Search(context.Background(), "川西", 1)
	require.NoError(t, err)
	require.Len(t, result.MomentPosts, 1)
	assert.Equal(t, uint64(10), result.MomentPosts[0].DynamicPostID)
	assert.Empty(t, result.TeamPosts)
}
