package service

import (
	"Wayfarer/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeFixture() (*fakeLikeRepo, *recordingProducer, LikeService) {
	likeRepo := &fakeLikeRepo{}
	producer := &recordingProducer{}
	userRepo := &fakeUserRepo{users: map[uint64]*model.User{
		1: {UserID: 1, Username: "liker"},
	}}
	momentRepo := &fakeMomentRepo{posts: map[uint64]*model.MomentPost{
		10: {DynamicPostID: 10, UserID: 2},
	}}
	teamRepo := &fakeTeamRepo{posts: map[uint64]*model.TeamPost{
		20: {PostID: 20, UserID: 3},
	}}
	svc := NewLikeService(likeRepo, userRepo, momentRepo, teamRepo, producer)
	return likeRepo, producer, svc
}

func TestToggleLike_LikeThenUnlike(t *testing.T) {
	likeRepo, producer, svc := newLikeFixture()
	ctx := context.Background()

	delta, err := svc.ToggleLike(ctx, model.PostKindMoment, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, delta)

	require.Len(t, likeRepo.messages, 1)
	msg := likeRepo.messages[0]
	assert.Equal(t, model.MessageTypeMomentLike, msg.Type)
	assert.Equal(t, uint64(2), msg.ReceiverID)
	require.NotNil(t, msg.RelatedID)
	assert.Equal(t, uint64(10), *msg.RelatedID)
	require.NotNil(t, msg.LikeID)

	require.Len(t, producer.events, 1)
	assert.Equal(t, uint64(2), producer.events[0].ReceiverID)

	// 再点一次取消，不再追加任何消息
	delta, err = svc.ToggleLike(ctx, model.PostKindMoment, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, -1, delta)
	assert.Len(t, likeRepo.messages, 1)
	assert.Len(t, producer.events, 1)
}

func TestToggleLike_TeamPostMessageType(t *testing.T) {
	likeRepo, _, svc := newLikeFixture()

	delta, err := svc.ToggleLike(context.Background(), model.PostKindTeam, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, delta)
	require.Len(t, likeRepo.messages, 1)
	assert.Equal(t, model.MessageTypeTeamLike, likeRepo.messages[0].Type)
	assert.Equal(t, uint64(3), likeRepo.messages[0].ReceiverID)
}

func TestToggleLike_InvalidKind(t *testing.T) {
	_, _, svc := newLikeFixture()

	_, err := svc.ToggleLike(context.Background(), model.PostKind(9), 1, 10)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestToggleLike_PostMissing(t *testing.T) {
	_, _, svc := newLikeFixture()

	_, err := svc.ToggleLike(context.Background(), model.PostKindMoment, 1, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleLike_UserMissing(t *testing.T) {
	_, _, svc := newLikeFixture()

	_, err := svc.ToggleLike(context.Background(), model.PostKindMoment, 42, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleLike_MessageFailureRollsBackLike(t *testing.T) {
	likeRepo, producer, svc := newLikeFixture()
	likeRepo.msgErr = errDBDown
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, model.PostKindMoment, 1, 10)
	require.Error(t, err)

	// 事务回滚：点赞与消息都不落库，也不发事件
	exists, _ := likeRepo.Exists(ctx, model.PostKindMoment, 1, 10)
	assert.False(t, exists)
	assert.Empty(t, likeRepo.messages)
	assert.Empty(t, producer.events)
}
