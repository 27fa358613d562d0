package kafka

import (
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// NotifyHandler 把通知事件扇出到接收者的 Redis 频道，
// 在线的 WebSocket 连接从频道实时收到推送。
type NotifyHandler struct{}

func NewNotifyHandler() *NotifyHandler {
	return &NotifyHandler{}
}

func (s *NotifyHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notify consumer setup")
	return nil
}

func (s *NotifyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notify consumer cleanup")
	return nil
}

func (s *NotifyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-notify consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("process batch error", "err", err)
		return err
	}
	log.Info("topic-notify consume claim end")
	return nil
}

func (s *NotifyHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event NotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal notification event error", "err", err)
		// 格式坏的消息重试无意义，直接跳过
		return nil
	}

	channel := consts.NotifyChannelKey + strconv.FormatUint(event.ReceiverID, 10)
	if err := redis.Publish(ctx, channel, msg.Value); err != nil {
		return errors.Wrap(err, "publish notification to channel")
	}
	return nil
}
