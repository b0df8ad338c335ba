package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// OrganizationImageRepository 定义了组织-图片桥接记录的持久化操作接口。
type OrganizationImageRepository interface {
	// CreateLink 建立一条组织-图片挂载记录。
	// - SequenceIndex 由调用方计算 (取 CountByOrganization 的当前值，追加到末尾)。
	// - 与图片行的插入共用一个事务，避免出现无挂载记录的孤儿图片。
	CreateLink(ctx context.Context, db *gorm.DB, link *entities.OrganizationImage) error

	// CountByOrganization 统计某组织当前的挂载数。
	// - 该值即下一张图片的 SequenceIndex (位置只追加，删除后不回收)。
	// - 注意事项: 并发创建时，同一事务内的统计可缩小但不能消除重复位置的竞争窗口。
	CountByOrganization(ctx context.Context, db *gorm.DB, orgID uint64) (int64, error)

	// ListByOrganization 按 SequenceIndex 升序列出某组织的全部挂载记录。
	ListByOrganization(ctx context.Context, orgID uint64) ([]*entities.OrganizationImage, error)

	// DeleteLinksByImageID 软删除某图片的全部挂载记录（随图片删除时使用）。
	DeleteLinksByImageID(ctx context.Context, db *gorm.DB, imageID uint64) error
}

type organizationImageRepository struct {
	db *gorm.DB
}

// NewOrganizationImageRepository 是 organizationImageRepository 的构造函数。
func NewOrganizationImageRepository(db *gorm.DB) OrganizationImageRepository {
	return &organizationImageRepository{db: db}
}

func (r *organizationImageRepository) CreateLink(ctx context.Context, db *gorm.DB, link *entities.OrganizationImage) error {
	if err := db.WithContext(ctx).Create(link).Error; err != nil {
		return err
	}
	return nil
}

func (r *organizationImageRepository) CountByOrganization(ctx context.Context, db *gorm.DB, orgID uint64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entities.OrganizationImage{}).
		Where("org_id = ?", orgID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *organizationImageRepository) ListByOrganization(ctx context.Context, orgID uint64) ([]*entities.OrganizationImage, error) {
	var links []*entities.OrganizationImage
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("sequence_index ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *organizationImageRepository) DeleteLinksByImageID(ctx context.Context, db *gorm.DB, imageID uint64) error {
	// 图片未挂载到任何组织也算成功，不检查 RowsAffected
	return db.WithContext(ctx).
		Where("image_id = ?", imageID).
		Delete(&entities.OrganizationImage{}).Error
}
