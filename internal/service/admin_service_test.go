package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (*fakeMessageRepo, *recordingProducer, AdminService) {
	messageRepo := &fakeMessageRepo{}
	producer := &recordingProducer{}
	svc := NewAdminService(
		&fakeAdminRepo{admins: map[uint64]*model.Admin{
			1: {AdminID: 1, Nickname: "运营小助手"},
		}},
		&fakeUserRepo{users: map[uint64]*model.User{
			10: {UserID: 10, Nickname: "Alice"},
			11: {UserID: 11, Nickname: "Bob"},
		}},
		messageRepo,
		producer,
	)
	return messageRepo, producer, svc
}

func TestPageMessages_FillsBothPartyNames(t *testing.T) {
	messageRepo, _, svc := newAdminFixture()
	messageRepo.rows = []*model.Message{
		{
			ID:           1,
			SenderType:   model.SenderTypeUser,
			SenderID:     10,
			ReceiverType: model.SenderTypeUser,
			ReceiverID:   11,
			Type:         model.MessageTypePrivate,
			Content:      "hi",
		},
		{
			ID:           2,
			SenderType:   model.SenderTypeAdmin,
			SenderID:     1,
			ReceiverType: model.SenderTypeUser,
			ReceiverID:   10,
			Type:         model.MessageTypeAdmin,
			Content:      "notice",
		},
	}

	page, err := svc.PageMessages(context.Background(), repository.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.List, 2)

	assert.Equal(t, "Alice", page.List[0].SenderName)
	assert.Equal(t, "Bob", page.List[0].ReceiverName)
	// 发送方是管理员时昵称走管理员表
	assert.Equal(t, "运营小助手", page.List[1].SenderName)
	assert.Equal(t, "Alice", page.List[1].ReceiverName)
}

func TestBroadcast_CreatesMessagePerReceiver(t *testing.T) {
	messageRepo, producer, svc := newAdminFixture()

	err := svc.Broadcast(context.Background(), 1, &dto.BroadcastDTO{
		Content:     "maintenance tonight",
		ReceiverIDs: []uint64{10, 11},
	})
	require.NoError(t, err)

	require.Len(t, messageRepo.created, 2)
	for _, msg := range messageRepo.created {
		assert.Equal(t, model.SenderTypeAdmin, msg.SenderType)
		assert.Equal(t, uint64(1), msg.SenderID)
		assert.Equal(t, model.MessageTypeAdmin, msg.Type)
	}
	assert.Len(t, producer.events, 2)
}
