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

// ResourceRepository 定义了资源的持久化操作接口。
type ResourceRepository interface {
	// CreateResource 创建新的资源记录
	CreateResource(ctx context.Context, db *gorm.DB, resource *entities.Resource) error

	// GetResourceByID 根据 ID 检索资源
	// - 注意事项: 若资源不存在，返回 commonerrors.ErrRepoNotFound
	GetResourceByID(ctx context.Context, id uint64) (*entities.Resource, error)

	// ListResourcesByCursor 实现资源列表的游标分页查询。
	// - 设计为降序（ID越大越新）。
	// - category (*string): 可选，按分类筛选。
	// - 返回 nextCursor (*uint64): 下一页的起始ID，nil 表示没有更多数据。
	ListResourcesByCursor(ctx context.Context, category *string, cursor *uint64, pageSize int) ([]*entities.Resource, *uint64, error)

	// UpdateResource 更新资源字段，nil 表示不更新对应字段
	UpdateResource(ctx context.Context, id uint64, name, description, url, category *string) error

	// DeleteResource 对指定资源执行软删除
	DeleteResource(ctx context.Context, db *gorm.DB, id uint64) error
}

type resourceRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewResourceRepository 是 resourceRepository 的构造函数。
func NewResourceRepository(db *gorm.DB, logger *core.ZapLogger) ResourceRepository {
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resourceRepository) CreateResource(ctx context.Context, db *gorm.DB, resource *entities.Resource) error {
	if err := db.WithContext(ctx).Create(resource).Error; err != nil {
		return err
	}
	return nil
}

func (r *resourceRepository) GetResourceByID(ctx context.Context, id uint64) (*entities.Resource, error) {
	var resource entities.Resource
	err := r.db.WithContext(ctx).First(&resource, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询资源失败", zap.Error(err), zap.Uint64("resourceID", id))
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) ListResourcesByCursor(ctx context.Context, category *string, cursor *uint64, pageSize int) ([]*entities.Resource, *uint64, error) {
	var resources []*entities.Resource

	query := r.db.WithContext(ctx).Order("id DESC")
	if category != nil && *category != "" {
		query = query.Where("category = ?", *category)
	}
	if cursor != nil {
		query = query.Where("id < ?", *cursor)
	}

	// 查询 pageSize + 1 条记录，目的是判断是否还有下一页。
	err := query.Limit(pageSize + 1).Find(&resources).Error
	if err != nil {
		r.logger.Error("游标查询资源列表失败", zap.Error(err))
		return nil, nil, err
	}

	var nextCursor *uint64
	if len(resources) > pageSize {
		nextCursor = &resources[pageSize-1].ID
		resources = resources[:pageSize]
	}

	return resources, nextCursor, nil
}

func (r *resourceRepository) UpdateResource(ctx context.Context, id uint64, name, description, url, category *string) error {
	updateMap := make(map[string]interface{})

	if name != nil {
		updateMap["name"] = *name
	}
	if description != nil {
		updateMap["description"] = *description
	}
	if url != nil {
		updateMap["url"] = *url
	}
	if category != nil {
		updateMap["category"] = *category
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)
	if result.Error != nil {
		r.logger.Error("更新资源数据库操作失败", zap.Error(result.Error), zap.Uint64("resourceID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *resourceRepository) DeleteResource(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Resource{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
