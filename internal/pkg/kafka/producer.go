package kafka

import (
	"Wayfarer/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// NotifyProducer 通知事件生产者。发送失败只记日志，
// 不回滚已提交的业务写入。
type NotifyProducer interface {
	Publish(ctx context.Context, event *NotificationEvent)
	Close() error
}

type notifyProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewNotifyProducer(cfg *config.Config) (NotifyProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}
	return &notifyProducerImpl{
		producer: producer,
		topic:    cfg.KafkaNotify.Topic,
	}, nil
}

func (s *notifyProducerImpl) Publish(ctx context.Context, event *NotificationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "marshal notification event failed", "err", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Type),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = s.producer.SendMessage(msg); err != nil {
		log.ErrorContext(ctx, "publish notification event failed",
			"type", event.Type, "receiver_id", event.ReceiverID, "err", err)
	}
}

func (s *notifyProducerImpl) Close() error {
	return s.producer.Close()
}
