package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// ImageRepository 定义了图片元数据的持久化操作接口。
// 二进制数据不在 MySQL 中，仓库层只管理指向 COS 对象的元数据行。
type ImageRepository interface {
	// CreateImage 持久化一条新的图片元数据。
	// - 调用方保证二进制已成功上传到对象存储，且大小已通过上传上限校验。
	CreateImage(ctx context.Context, db *gorm.DB, image *entities.Image) error

	// GetImageByID 根据 ID 检索图片元数据。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetImageByID(ctx context.Context, id uint64) (*entities.Image, error)

	// GetImagesByIDs 批量检索图片元数据，结果不保证顺序。
	GetImagesByIDs(ctx context.Context, ids []uint64) ([]*entities.Image, error)

	// DeleteImage 对指定图片执行软删除。
	DeleteImage(ctx context.Context, db *gorm.DB, id uint64) error
}

type imageRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewImageRepository 是 imageRepository 的构造函数。
func NewImageRepository(db *gorm.DB, logger *core.ZapLogger) ImageRepository {
	return &imageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *imageRepository) CreateImage(ctx context.Context, db *gorm.DB, image *entities.Image) error {
	if err := db.WithContext(ctx).Create(image).Error; err != nil {
		return err
	}
	// 创建成功后，image 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

func (r *imageRepository) GetImageByID(ctx context.Context, id uint64) (*entities.Image, error) {
	var image entities.Image
	err := r.db.WithContext(ctx).First(&image, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询图片元数据失败", zap.Error(err), zap.Uint64("imageID", id))
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) GetImagesByIDs(ctx context.Context, ids []uint64) ([]*entities.Image, error) {
	if len(ids) == 0 {
		return []*entities.Image{}, nil
	}
	var images []*entities.Image
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error; err != nil {
		r.logger.Error("批量查询图片元数据失败", zap.Error(err), zap.Int("count", len(ids)))
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) DeleteImage(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Image{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
