package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*fakeUserRepo, UserService) {
	userRepo := &fakeUserRepo{}
	return userRepo, NewUserService(userRepo, &fakeFollowRepo{})
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Password: "secret123",
		Nickname: "Alice",
	}))

	stored, err := userRepo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	// 密码落库前必须散列
	assert.NotEqual(t, "secret123", stored.Password)
	assert.Equal(t, consts.DefaultAvatarURL, stored.AvatarURL)

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, stored.UserID, token.UserID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	_, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret123"}))
	err := svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "other456"})
	assert.ErrorIs(t, err, ErrUserUsernameExist)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret123"}))
	_, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, svc := newUserFixture()

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_BannedUser(t *testing.T) {
	userRepo, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret123"}))
	stored, err := userRepo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	stored.Status = 0

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserBan)
}
