package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendImageCreatedEvent 发送图片创建事件到 Kafka
// - 意图: 通知下游（媒体审核、CDN 预热等）有新图片入库
// - 输入: ctx context.Context 上下文, imageData events.ImageEventData 图片核心数据
// - 输出: error 错误信息
func (p *KafkaProducer) SendImageCreatedEvent(ctx context.Context, imageData events.ImageEventData) error {
	event := events.ImageCreatedEvent{
		EventID:   uuid.New().String(), // 生成唯一的 EventID
		Timestamp: time.Now(),          // 设置当前时间戳
		Image:     imageData,
	}
	return p.SendEvent(ctx, p.topics.ImageCreated, event)
}

// SendContentDeletedEvent 发送内容删除事件到 Kafka
// - 意图: 通知下游（如搜索索引）同步删除
// - 输入: kind 被删除的记录类型, recordID 记录ID
// - 输出: error 错误信息
func (p *KafkaProducer) SendContentDeletedEvent(ctx context.Context, kind string, recordID uint64) error {
	event := events.ContentDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Kind:      kind,
		RecordID:  recordID,
	}
	return p.SendEvent(ctx, p.topics.ContentDeleted, event)
}

// Close 关闭底层的 Kafka writer，等待缓冲消息发送完毕。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
