package service

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/myErrors"
	redisrepo "github.com/Xushengqwer/content_service/repo/redis"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/utils"
)

// TopicService 定义了处理主题业务逻辑的接口。
type TopicService interface {
	// CreateTopic 创建新主题。
	// - 持久化前对完整候选属性集做原子校验（激活/弃用交叉规则 + 日期一致性）。
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*vo.TopicResponse, error)

	// GetTopicByID 获取单个主题。
	GetTopicByID(ctx context.Context, topicID uint64) (*vo.TopicResponse, error)

	// ListTopics 列出主题；active=true 时走 Redis 缓存，未命中回源并重建。
	ListTopics(ctx context.Context, active *bool) (*vo.ListTopicsResponse, error)

	// UpdateTopic 更新主题。校验针对合并后的完整候选属性集执行。
	UpdateTopic(ctx context.Context, topicID uint64, req *dto.UpdateTopicRequest) (*vo.TopicResponse, error)

	// DeleteTopic 软删除主题并使缓存失效。
	DeleteTopic(ctx context.Context, topicID uint64) error

	// RefreshActiveTopicCache 从数据库重建激活主题列表缓存；定时任务使用。
	RefreshActiveTopicCache(ctx context.Context) error
}

// topicService 是 TopicService 接口的具体实现。
type topicService struct {
	topicRepo  mysql.TopicRepository // 主题的 MySQL 操作
	topicCache redisrepo.TopicCache  // 激活主题列表的 Redis 缓存
	db         *gorm.DB              // GORM 数据库实例
	kafkaSvc   *producer.KafkaProducer
	logger     *core.ZapLogger
}

// NewTopicService 是 topicService 的构造函数，通过依赖注入初始化服务实例。
func NewTopicService(db *gorm.DB, topicRepo mysql.TopicRepository, topicCache redisrepo.TopicCache, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) TopicService {
	return &topicService{
		topicRepo:  topicRepo,
		topicCache: topicCache,
		db:         db,
		kafkaSvc:   kafkaSvc,
		logger:     logger,
	}
}

// validateTopic 对完整候选属性集执行主题校验，失败返回带错误码的 ValidationError。
// 校验顺序固定：激活带弃用时间 -> 弃用缺弃用时间 -> 日期一致性；首个失败即返回。
func validateTopic(active bool, creationDate time.Time, deprecationDate *time.Time) error {
	if active && deprecationDate != nil {
		return myErrors.NewValidationErrorWithCode(
			myErrors.CodeActiveTopicWithDeprecation,
			"Active topics cannot have a deprecation date.",
		)
	}
	if !active && deprecationDate == nil {
		return myErrors.NewValidationErrorWithCode(
			myErrors.CodeInactiveTopicNoDeprecation,
			"Deprecated topics must have a deprecation date.",
		)
	}
	return utils.ValidateCreationAndDeprecationDates(creationDate, deprecationDate)
}

// CreateTopic 实现主题的创建逻辑。
func (s *topicService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*vo.TopicResponse, error) {
	// 新建主题尚无创建时间，用当前时间参与日期一致性校验
	if err := validateTopic(req.Active, time.Now(), req.DeprecationDate); err != nil {
		return nil, err
	}

	topic := &entities.Topic{
		Name:            req.Name,
		Description:     req.Description,
		Active:          req.Active,
		DeprecationDate: req.DeprecationDate,
	}
	if err := s.topicRepo.CreateTopic(ctx, s.db, topic); err != nil {
		s.logger.Error("创建主题失败", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	s.invalidateCache(ctx)
	return vo.NewTopicResponseFromEntity(topic), nil
}

// GetTopicByID 实现获取单个主题的逻辑。
func (s *topicService) GetTopicByID(ctx context.Context, topicID uint64) (*vo.TopicResponse, error) {
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return vo.NewTopicResponseFromEntity(topic), nil
}

// ListTopics 实现主题列表查询，激活主题列表走缓存。
func (s *topicService) ListTopics(ctx context.Context, active *bool) (*vo.ListTopicsResponse, error) {
	// 只有"激活主题列表"这一种查询走缓存，其余组合直接回源
	if active != nil && *active && s.topicCache != nil {
		cached, err := s.topicCache.GetActiveTopics(ctx)
		if err == nil {
			return &vo.ListTopicsResponse{Topics: cached}, nil
		}
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			// 缓存层故障不阻塞读路径，降级回源
			s.logger.Warn("读取激活主题缓存失败，降级回源数据库", zap.Error(err))
		}
	}

	topics, err := s.topicRepo.ListTopics(ctx, active)
	if err != nil {
		return nil, err
	}
	responses := vo.NewTopicResponsesFromEntities(topics)

	if active != nil && *active && s.topicCache != nil {
		if cacheErr := s.topicCache.SetActiveTopics(ctx, responses); cacheErr != nil {
			s.logger.Warn("回填激活主题缓存失败", zap.Error(cacheErr))
		}
	}

	return &vo.ListTopicsResponse{Topics: responses}, nil
}

// UpdateTopic 实现主题的更新逻辑。
func (s *topicService) UpdateTopic(ctx context.Context, topicID uint64, req *dto.UpdateTopicRequest) (*vo.TopicResponse, error) {
	// 1. 取现有记录，构造合并后的完整候选属性集
	existing, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	candidateActive := existing.Active
	if req.Active != nil {
		candidateActive = *req.Active
	}
	candidateDeprecation := existing.DeprecationDate
	if req.ClearDeprecationDate {
		candidateDeprecation = nil
	} else if req.DeprecationDate != nil {
		candidateDeprecation = req.DeprecationDate
	}

	// 2. 对合并结果做原子校验，创建时间取已持久化的值
	if err := validateTopic(candidateActive, existing.CreatedAt, candidateDeprecation); err != nil {
		return nil, err
	}

	// 3. 持久化更新
	if err := s.topicRepo.UpdateTopic(ctx, topicID, req.Name, req.Description, req.Active, req.DeprecationDate, req.ClearDeprecationDate); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	updated, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return vo.NewTopicResponseFromEntity(updated), nil
}

// DeleteTopic 实现主题的软删除逻辑。
func (s *topicService) DeleteTopic(ctx context.Context, topicID uint64) error {
	if err := s.topicRepo.DeleteTopic(ctx, s.db, topicID); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	if s.kafkaSvc != nil {
		go func(id uint64) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendContentDeletedEvent(bgCtx, "topic", id); kafkaErr != nil {
				s.logger.Error("发送 Kafka 删除事件失败", zap.Error(kafkaErr), zap.Uint64("topic_id", id))
			}
		}(topicID)
	}
	return nil
}

// RefreshActiveTopicCache 从数据库重建激活主题列表缓存。
func (s *topicService) RefreshActiveTopicCache(ctx context.Context) error {
	if s.topicCache == nil {
		return nil
	}
	active := true
	topics, err := s.topicRepo.ListTopics(ctx, &active)
	if err != nil {
		return err
	}
	return s.topicCache.SetActiveTopics(ctx, vo.NewTopicResponsesFromEntities(topics))
}

// invalidateCache 使激活主题列表缓存失效；失败只记录日志，不影响写路径结果。
func (s *topicService) invalidateCache(ctx context.Context) {
	if s.topicCache == nil {
		return
	}
	if err := s.topicCache.InvalidateActiveTopics(ctx); err != nil {
		s.logger.Warn("使激活主题缓存失效失败", zap.Error(err))
	}
}
