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

type teamFixture struct {
	teamRepo        *fakeTeamRepo
	extraRepo       *fakeExtraRepo
	participantRepo *fakeParticipantRepo
	svc             TeamService
}

func newTeamFixture() *teamFixture {
	f := &teamFixture{
		teamRepo: &fakeTeamRepo{posts: map[uint64]*model.TeamPost{}},
		extraRepo: &fakeExtraRepo{
			images:      map[extraKey][]string{},
			itineraries: map[uint64]string{},
		},
		participantRepo: &fakeParticipantRepo{},
	}
	cards := &fakeUserCards{cards: map[uint64]*dto.UserCardDTO{
		2: {UserID: 2, Nickname: "Leader", AvatarURL: "l.png"},
	}}
	f.svc = NewTeamService(f.teamRepo, f.extraRepo, &fakeLikeRepo{}, f.participantRepo, cards)
	return f
}

func TestJoinTeam(t *testing.T) {
	f := newTeamFixture()
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2, TeamSize: 2}
	ctx := context.Background()

	require.NoError(t, f.svc.JoinTeam(ctx, 5, 20))
	assert.ErrorIs(t, f.svc.JoinTeam(ctx, 5, 20), ErrAlreadyJoined)

	require.NoError(t, f.svc.JoinTeam(ctx, 6, 20))
	// 满员后不再接受新成员
	assert.ErrorIs(t, f.svc.JoinTeam(ctx, 7, 20), ErrTeamFull)
}

func TestJoinTeam_PostMissing(t *testing.T) {
	f := newTeamFixture()
	assert.ErrorIs(t, f.svc.JoinTeam(context.Background(), 5, 404), ErrPostNotFound)
}

// team_size 为 0 表示不限人数
func TestJoinTeam_UnlimitedSize(t *testing.T) {
	f := newTeamFixture()
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2, TeamSize: 0}
	ctx := context.Background()

	for userID := uint64(10); userID < 30; userID++ {
		require.NoError(t, f.svc.JoinTeam(ctx, userID, 20))
	}
}

func TestLeaveTeam(t *testing.T) {
	f := newTeamFixture()
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2}
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.LeaveTeam(ctx, 5, 20), ErrNotJoined)

	require.NoError(t, f.svc.JoinTeam(ctx, 5, 20))
	require.NoError(t, f.svc.LeaveTeam(ctx, 5, 20))
	assert.ErrorIs(t, f.svc.LeaveTeam(ctx, 5, 20), ErrNotJoined)
}

// 列表项只带作者名片、配图和行程图，互动数留给详情页
func TestEnrichTeamPosts(t *testing.T) {
	f := newTeamFixture()
	post := &model.TeamPost{PostID: 20, UserID: 2, Title: "川西环线"}
	f.extraRepo.images[extraKey{model.PostKindTeam, 20}] = []string{"team/20.jpg"}
	f.extraRepo.itineraries[20] = "itinerary/20.png"

	enriched, err := f.svc.EnrichTeamPosts(context.Background(), []*model.TeamPost{post})
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	item := enriched[0]
	assert.Equal(t, "川西环线", item.Title)
	assert.Equal(t, "Leader", item.Nickname)
	require.Len(t, item.Images, 1)
	assert.Contains(t, item.Images[0], "team/20.jpg")
	require.NotNil(t, item.ItineraryURL)
	assert.Contains(t, *item.ItineraryURL, "itinerary/20.png")
	assert.Zero(t, item.LikeCount)
	assert.Zero(t, item.JoinCount)
}

func TestEnrichTeamPosts_NoItinerary(t *testing.T) {
	f := newTeamFixture()
	post := &model.TeamPost{PostID: 20, UserID: 2}

	enriched, err := f.svc.EnrichTeamPosts(context.Background(), []*model.TeamPost{post})
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].ItineraryURL)
}

func TestGetTeamFeed_OnlyApprovedVisible(t *testing.T) {
	f := newTeamFixture()
	f.teamRepo.posts[20] = &model.TeamPost{PostID: 20, UserID: 2, Title: "已过审", Status: consts.PostStatusApproved}
	f.teamRepo.posts[21] = &model.TeamPost{PostID: 21, UserID: 2, Title: "待审核", Status: consts.PostStatusPending}
	f.teamRepo.posts[22] = &model.TeamPost{PostID: 22, UserID: 2, Title: "已驳回", Status: consts.PostStatusRejected}

	page, err := f.svc.GetTeamFeed(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, uint64(20), page.List[0].PostID)
}
