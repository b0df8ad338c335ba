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

// DiscussionRepository 定义了讨论数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type DiscussionRepository interface {
	// CreateDiscussion 持久化一个新的讨论记录。
	CreateDiscussion(ctx context.Context, db *gorm.DB, discussion *entities.Discussion) error

	// GetDiscussionByID 根据 ID 检索讨论。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetDiscussionByID(ctx context.Context, id uint64) (*entities.Discussion, error)

	// ListDiscussionsByCursor 实现讨论列表的游标分页查询。
	// - 设计为降序（ID越大越新）。
	// - cursor (*uint64): nil 表示首次加载。
	// - category (*string): 可选，按分类筛选。
	// - 返回 nextCursor (*uint64): 下一页的起始ID，nil 表示没有更多数据。
	ListDiscussionsByCursor(ctx context.Context, category *string, cursor *uint64, pageSize int) ([]*entities.Discussion, *uint64, error)

	// UpdateDiscussion 更新指定讨论的字段。
	// - 传入 nil 表示不更新对应字段。
	// - 总是会自动更新修改时间 (updated_at)。
	UpdateDiscussion(ctx context.Context, id uint64, title *string, category *string) error

	// DeleteDiscussion 对指定讨论执行软删除。
	DeleteDiscussion(ctx context.Context, db *gorm.DB, id uint64) error
}

// discussionRepository 是 DiscussionRepository 接口针对 MySQL 的具体实现。
type discussionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewDiscussionRepository 是 discussionRepository 的构造函数。
func NewDiscussionRepository(db *gorm.DB, logger *core.ZapLogger) DiscussionRepository {
	return &discussionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDiscussion 实现讨论的数据库插入操作。
func (r *discussionRepository) CreateDiscussion(ctx context.Context, db *gorm.DB, discussion *entities.Discussion) error {
	// 使用传入的 db 对象（可能是事务对象 tx）执行数据库操作。
	// GORM 会自动填充 BaseModel 中的 CreatedAt 和 UpdatedAt 字段。
	if err := db.WithContext(ctx).Create(discussion).Error; err != nil {
		return err
	}
	return nil
}

// GetDiscussionByID 实现按主键查询讨论。
func (r *discussionRepository) GetDiscussionByID(ctx context.Context, id uint64) (*entities.Discussion, error) {
	var discussion entities.Discussion
	err := r.db.WithContext(ctx).First(&discussion, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询讨论失败", zap.Error(err), zap.Uint64("discussionID", id))
		return nil, err
	}
	return &discussion, nil
}

// ListDiscussionsByCursor 实现游标方式获取讨论列表。
func (r *discussionRepository) ListDiscussionsByCursor(ctx context.Context, category *string, cursor *uint64, pageSize int) ([]*entities.Discussion, *uint64, error) {
	var discussions []*entities.Discussion

	query := r.db.WithContext(ctx).Order("id DESC")
	if category != nil && *category != "" {
		query = query.Where("category = ?", *category)
	}
	// 如果提供了 cursor (非首次加载)，则只查询 ID 小于 cursor 的记录。
	if cursor != nil {
		query = query.Where("id < ?", *cursor)
	}

	// 查询 pageSize + 1 条记录，目的是判断是否还有下一页。
	err := query.Limit(pageSize + 1).Find(&discussions).Error
	if err != nil {
		r.logger.Error("游标查询讨论列表失败", zap.Error(err))
		return nil, nil, err
	}

	var nextCursor *uint64
	if len(discussions) > pageSize {
		nextCursor = &discussions[pageSize-1].ID
		discussions = discussions[:pageSize]
	}

	return discussions, nextCursor, nil
}

// UpdateDiscussion 实现讨论字段的部分更新。
func (r *discussionRepository) UpdateDiscussion(ctx context.Context, id uint64, title *string, category *string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if category != nil {
		updateMap["category"] = *category
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新讨论 (所有可选参数均为nil)",
			zap.Uint64("discussionID", id),
		)
		return nil
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Discussion{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新讨论数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("discussionID", id),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新讨论但未找到记录或记录已被删除", zap.Uint64("discussionID", id))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeleteDiscussion 实现讨论的软删除。
func (r *discussionRepository) DeleteDiscussion(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Discussion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
