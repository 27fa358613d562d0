package service

import (
	"Wayfarer/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowFixture() (*fakeFollowRepo, *recordingProducer, FollowService) {
	followRepo := &fakeFollowRepo{}
	producer := &recordingProducer{}
	userRepo := &fakeUserRepo{users: map[uint64]*model.User{
		1: {UserID: 1, Username: "alice"},
		2: {UserID: 2, Username: "bob"},
	}}
	return followRepo, producer, NewFollowService(followRepo, userRepo, producer)
}

func TestFollowOrUnfollow_Follow(t *testing.T) {
	followRepo, producer, svc := newFollowFixture()
	ctx := context.Background()

	require.NoError(t, svc.FollowOrUnfollow(ctx, 1, 2, 1))
	assert.True(t, followRepo.follows[followPair{1, 2}])

	require.Len(t, followRepo.messages, 1)
	assert.Equal(t, model.MessageTypeFollow, followRepo.messages[0].Type)
	assert.Equal(t, uint64(2), followRepo.messages[0].ReceiverID)

	require.Len(t, producer.events, 1)
	assert.Equal(t, model.MessageTypeFollow, producer.events[0].Type)
}

func TestFollowOrUnfollow_DuplicateFollow(t *testing.T) {
	_, _, svc := newFollowFixture()
	ctx := context.Background()

	require.NoError(t, svc.FollowOrUnfollow(ctx, 1, 2, 1))
	err := svc.FollowOrUnfollow(ctx, 1, 2, 1)
	assert.ErrorIs(t, err, ErrUserFollowExist)
}

// 未关注状态下取关照常走通，不报错
func TestFollowOrUnfollow_UnfollowWithoutFollow(t *testing.T) {
	followRepo, _, svc := newFollowFixture()

	require.NoError(t, svc.FollowOrUnfollow(context.Background(), 1, 2, 0))
	assert.False(t, followRepo.follows[followPair{1, 2}])
}

func TestFollowOrUnfollow_SelfFollow(t *testing.T) {
	_, _, svc := newFollowFixture()

	err := svc.FollowOrUnfollow(context.Background(), 1, 1, 1)
	assert.ErrorIs(t, err, ErrUserFollowSelf)
}

func TestFollowOrUnfollow_TargetMissing(t *testing.T) {
	_, _, svc := newFollowFixture()

	err := svc.FollowOrUnfollow(context.Background(), 1, 99, 1)
	assert.ErrorIs(t, err, ErrTargetUserInvalid)
}

func TestFollowOrUnfollow_MessageFailureRollsBackEdge(t *testing.T) {
	followRepo, producer, svc := newFollowFixture()
	followRepo.msgErr = errDBDown
	ctx := context.Background()

	err := svc.FollowOrUnfollow(ctx, 1, 2, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserFollowExist)

	// 事务回滚：关注边与消息都不落库，也不发事件
	edge, _ := followRepo.GetUserFollow(ctx, 1, 2)
	assert.Nil(t, edge)
	assert.Empty(t, followRepo.messages)
	assert.Empty(t, producer.events)
}
