package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
)

// TopicCache 定义了激活主题列表的缓存操作接口。
// - 目标: 主题列表是典型的读多写少数据，缓存以减轻数据库压力。
// - 约定: 缓存未命中返回 myErrors.ErrCacheMiss，由上层服务回源数据库。
type TopicCache interface {
	// GetActiveTopics 从 Redis 获取激活主题列表。
	// - 未命中返回 myErrors.ErrCacheMiss。
	GetActiveTopics(ctx context.Context) ([]*vo.TopicResponse, error)

	// SetActiveTopics 将激活主题列表写入 Redis，带 TTL 作为失效逻辑遗漏时的兜底。
	SetActiveTopics(ctx context.Context, topics []*vo.TopicResponse) error

	// InvalidateActiveTopics 删除激活主题列表缓存。
	// - 任何主题写操作（创建/更新/删除）成功后调用。
	InvalidateActiveTopics(ctx context.Context) error
}

// topicCacheImpl 是 TopicCache 接口的 Redis 实现。
type topicCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewTopicCache 是 topicCacheImpl 的构造函数。
func NewTopicCache(redisClient *redis.Client, logger *core.ZapLogger) TopicCache {
	return &topicCacheImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (c *topicCacheImpl) GetActiveTopics(ctx context.Context) ([]*vo.TopicResponse, error) {
	key := constant.TopicListCacheKey

	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("激活主题列表缓存未命中", zap.String("key", key))
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("从 Redis 获取激活主题列表失败", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("获取激活主题列表缓存(key: %s)失败: %w", key, err)
	}

	var topics []*vo.TopicResponse
	if err := json.Unmarshal(payload, &topics); err != nil {
		// 缓存内容损坏时按未命中处理，让上层回源并重建缓存
		c.logger.Error("激活主题列表缓存内容反序列化失败，视为未命中",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, myErrors.ErrCacheMiss
	}

	c.logger.Debug("激活主题列表缓存命中", zap.String("key", key), zap.Int("count", len(topics)))
	return topics, nil
}

func (c *topicCacheImpl) SetActiveTopics(ctx context.Context, topics []*vo.TopicResponse) error {
	key := constant.TopicListCacheKey

	payload, err := json.Marshal(topics)
	if err != nil {
		c.logger.Error("激活主题列表序列化失败", zap.Error(err))
		return fmt.Errorf("序列化激活主题列表失败: %w", err)
	}

	if err := c.redisClient.Set(ctx, key, payload, constant.TopicListCacheTTL).Err(); err != nil {
		c.logger.Error("写入激活主题列表缓存失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("写入激活主题列表缓存(key: %s)失败: %w", key, err)
	}

	c.logger.Debug("激活主题列表缓存已更新", zap.String("key", key), zap.Int("count", len(topics)))
	return nil
}

func (c *topicCacheImpl) InvalidateActiveTopics(ctx context.Context) error {
	key := constant.TopicListCacheKey

	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.logger.Error("删除激活主题列表缓存失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("删除激活主题列表缓存(key: %s)失败: %w", key, err)
	}
	return nil
}
