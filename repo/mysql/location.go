package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// LocationRepository 定义了地点的持久化操作接口。
type LocationRepository interface {
	// CreateLocation 创建新的地点记录
	CreateLocation(ctx context.Context, db *gorm.DB, location *entities.Location) error

	// GetLocationByID 根据 ID 检索地点
	// - 注意事项: 若地点不存在，返回 commonerrors.ErrRepoNotFound
	GetLocationByID(ctx context.Context, id uint64) (*entities.Location, error)

	// ListLocations 列出全部地点，按 ID 升序
	ListLocations(ctx context.Context) ([]*entities.Location, error)

	// UpdateLocation 更新地点字段，nil 表示不更新对应字段
	UpdateLocation(ctx context.Context, id uint64, lat, lon, bbox, displayName *string) error

	// DeleteLocation 对指定地点执行软删除
	DeleteLocation(ctx context.Context, db *gorm.DB, id uint64) error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository 是 locationRepository 的构造函数。
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(ctx context.Context, db *gorm.DB, location *entities.Location) error {
	if err := db.WithContext(ctx).Create(location).Error; err != nil {
		return err
	}
	return nil
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id uint64) (*entities.Location, error) {
	var location entities.Location
	err := r.db.WithContext(ctx).First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) ListLocations(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) UpdateLocation(ctx context.Context, id uint64, lat, lon, bbox, displayName *string) error {
	updateMap := make(map[string]interface{})

	if lat != nil {
		updateMap["lat"] = *lat
	}
	if lon != nil {
		updateMap["lon"] = *lon
	}
	if bbox != nil {
		updateMap["bbox"] = *bbox
	}
	if displayName != nil {
		updateMap["display_name"] = *displayName
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Location{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *locationRepository) DeleteLocation(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Location{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
