package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	momentRepo *fakeMomentRepo
	extraRepo  *fakeExtraRepo
	likeRepo   *fakeLikeRepo
	followRepo *fakeFollowRepo
	svc        PostService
}

func newPostFixture() *postFixture {
	f := &postFixture{
		momentRepo: &fakeMomentRepo{posts: map[uint64]*model.MomentPost{}},
		extraRepo: &fakeExtraRepo{
			images:        map[extraKey][]string{},
			likeCounts:    map[extraKey]int64{},
			commentCounts: map[extraKey]int64{},
		},
		likeRepo:   &fakeLikeRepo{},
		followRepo: &fakeFollowRepo{},
	}
	cards := &fakeUserCards{cards: map[uint64]*dto.UserCardDTO{
		2: {UserID: 2, Nickname: "Traveler", AvatarURL: "t.png"},
	}}
	f.svc = NewPostService(f.momentRepo, f.extraRepo, f.likeRepo, f.followRepo, cards)
	return f
}

func TestCreateMomentPost_StartsPending(t *testing.T) {
	f := newPostFixture()

	require.NoError(t, f.svc.CreateMomentPost(context.Background(), 2, &dto.MomentPostBaseDTO{
		Content: "出发去拉萨",
		Images:  []string{"a.jpg"},
	}))
	require.Len(t, f.momentRepo.posts, 1)
	for _, post := range f.momentRepo.posts {
		assert.Equal(t, consts.PostStatusPending, post.Status)
	}
}

// 编辑已过审的帖子会回到待审核
func TestUpdateMomentPost_ResetsToPending(t *testing.T) {
	f := newPostFixture()
	f.momentRepo.posts[10] = &model.MomentPost{
		DynamicPostID: 10,
		UserID:        2,
		Content:       "old",
		Status:        consts.PostStatusApproved,
	}

	require.NoError(t, f.svc.UpdateMomentPost(context.Background(), 2, &dto.MomentPostBaseDTO{
		DynamicPostID: 10,
		Content:       "new",
	}))
	assert.Equal(t, consts.PostStatusPending, f.momentRepo.posts[10].Status)
	assert.Equal(t, "new", f.momentRepo.posts[10].Content)
}

func TestUpdateMomentPost_NotOwner(t *testing.T) {
	f := newPostFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2}

	err := f.svc.UpdateMomentPost(context.Background(), 3, &dto.MomentPostBaseDTO{DynamicPostID: 10})
	assert.ErrorIs(t, err, UnauthorizedError)
}

// 关注页没有关注任何人时直接返回空页，不触发帖子查询
func TestGetMomentFeed_NoFollowingsShortCircuit(t *testing.T) {
	f := newPostFixture()
	queried := false
	f.momentRepo.feed = func(page, limit int, authorIDs []uint64) (*repository.Page[*model.MomentPost], error) {
		queried = true
		return repository.EmptyPage[*model.MomentPost](page, limit), nil
	}

	page, err := f.svc.GetMomentFeed(context.Background(), 2, 5, 1, true)
	require.NoError(t, err)
	assert.False(t, queried)
	assert.Empty(t, page.List)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 5, page.PageSize)
	assert.Zero(t, page.TotalCount)
}

func TestGetMomentFeed_FollowScopePassesAuthorIDs(t *testing.T) {
	f := newPostFixture()
	f.followRepo.follows = map[followPair]bool{{1, 2}: true}

	var gotAuthors []uint64
	f.momentRepo.feed = func(page, limit int, authorIDs []uint64) (*repository.Page[*model.MomentPost], error) {
		gotAuthors = authorIDs
		return repository.EmptyPage[*model.MomentPost](page, limit), nil
	}

	_, err := f.svc.GetMomentFeed(context.Background(), 1, 10, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, gotAuthors)
}

func TestEnrichMomentPosts_ViewerRelations(t *testing.T) {
	f := newPostFixture()
	post := &model.MomentPost{DynamicPostID: 10, UserID: 2, Status: consts.PostStatusApproved}
	f.extraRepo.images[extraKey{model.PostKindMoment, 10}] = []string{"img/10.jpg"}
	f.extraRepo.likeCounts[extraKey{model.PostKindMoment, 10}] = 3
	f.extraRepo.commentCounts[extraKey{model.PostKindMoment, 10}] = 2
	f.likeRepo.likes = map[likeKey]bool{{model.PostKindMoment, 1, 10}: true}
	f.followRepo.follows = map[followPair]bool{{1, 2}: true}

	enriched, err := f.svc.EnrichMomentPosts(context.Background(), []*model.MomentPost{post}, 1)
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	item := enriched[0]
	assert.Equal(t, int64(3), item.LikeCount)
	assert.Equal(t, int64(2), item.CommentCount)
	assert.True(t, item.IsLiked)
	assert.True(t, item.IsFollowed)
	assert.Equal(t, "Traveler", item.Nickname)
	require.Len(t, item.Images, 1)
	assert.Contains(t, item.Images[0], "img/10.jpg")
}

// 游客视角关系位一律 false
func TestEnrichMomentPosts_AnonymousViewer(t *testing.T) {
	f := newPostFixture()
	post := &model.MomentPost{DynamicPostID: 10, UserID: 2}
	f.likeRepo.likes = map[likeKey]bool{{model.PostKindMoment, 1, 10}: true}
	f.followRepo.follows = map[followPair]bool{{1, 2}: true}

	enriched, err := f.svc.EnrichMomentPosts(context.Background(), []*model.MomentPost{post}, 0)
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.False(t, enriched[0].IsLiked)
	assert.False(t, enriched[0].IsFollowed)
}

func TestGetMomentFeed_OnlyApprovedVisible(t *testing.T) {
	f := newPostFixture()
	f.momentRepo.posts[10] = &model.MomentPost{DynamicPostID: 10, UserID: 2, Status: consts.PostStatusApproved}
	f.momentRepo.posts[11] = &model.MomentPost{DynamicPostID: 11, UserID: 2, Status: consts.PostStatusPending}
	f.momentRepo.posts[12] = &model.MomentPost{DynamicPostID: 12, UserID: 2, Status: consts.PostStatusRejected}

	page, err := f.svc.GetMomentFeed(context.Background(), 1, 10, 0, false)
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, uint64(10), page.List[0].DynamicPostID)

	// 详情不设门禁，待审帖对作者侧调用仍可见
	detail, err := f.svc.GetMomentPost(context.Background(), 11, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), detail.DynamicPostID)
}
