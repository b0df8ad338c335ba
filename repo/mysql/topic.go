package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// TopicRepository 定义了主题的持久化操作接口。
// active 与 deprecation_date 的交叉校验属于服务层，仓库层只做读写。
type TopicRepository interface {
	// CreateTopic 持久化一个新的主题记录。
	CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error

	// GetTopicByID 根据 ID 检索主题。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetTopicByID(ctx context.Context, id uint64) (*entities.Topic, error)

	// ListTopics 列出主题，active 为 nil 时返回全部，否则按激活状态筛选。
	// - 按名称升序，便于前端稳定展示。
	ListTopics(ctx context.Context, active *bool) ([]*entities.Topic, error)

	// UpdateTopic 更新主题字段。
	// - 指针为 nil 表示不更新对应字段。
	// - clearDeprecationDate 为 true 时将弃用时间置空（优先于 deprecationDate 参数）。
	UpdateTopic(ctx context.Context, id uint64, name, description *string, active *bool, deprecationDate *time.Time, clearDeprecationDate bool) error

	// DeleteTopic 对指定主题执行软删除。
	DeleteTopic(ctx context.Context, db *gorm.DB, id uint64) error
}

type topicRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTopicRepository 是 topicRepository 的构造函数。
func NewTopicRepository(db *gorm.DB, logger *core.ZapLogger) TopicRepository {
	return &topicRepository{
		db:     db,
		logger: logger,
	}
}

func (r *topicRepository) CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error {
	if err := db.WithContext(ctx).Create(topic).Error; err != nil {
		return err
	}
	return nil
}

func (r *topicRepository) GetTopicByID(ctx context.Context, id uint64) (*entities.Topic, error) {
	var topic entities.Topic
	err := r.db.WithContext(ctx).First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询主题失败", zap.Error(err), zap.Uint64("topicID", id))
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) ListTopics(ctx context.Context, active *bool) ([]*entities.Topic, error) {
	var topics []*entities.Topic

	query := r.db.WithContext(ctx).Order("name ASC")
	if active != nil {
		query = query.Where("active = ?", *active)
	}

	if err := query.Find(&topics).Error; err != nil {
		r.logger.Error("查询主题列表失败", zap.Error(err))
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) UpdateTopic(ctx context.Context, id uint64, name, description *string, active *bool, deprecationDate *time.Time, clearDeprecationDate bool) error {
	updateMap := make(map[string]interface{})

	if name != nil {
		updateMap["name"] = *name
	}
	if description != nil {
		updateMap["description"] = *description
	}
	if active != nil {
		updateMap["active"] = *active
	}
	if clearDeprecationDate {
		updateMap["deprecation_date"] = nil
	} else if deprecationDate != nil {
		updateMap["deprecation_date"] = *deprecationDate
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新主题 (所有可选参数均为nil)",
			zap.Uint64("topicID", id),
		)
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)
	if result.Error != nil {
		r.logger.Error("更新主题数据库操作失败", zap.Error(result.Error), zap.Uint64("topicID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新主题但未找到记录或记录已被删除", zap.Uint64("topicID", id))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *topicRepository) DeleteTopic(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Topic{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
