package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// DiscussionEntryRepository 定义了讨论回复的持久化操作接口。
type DiscussionEntryRepository interface {
	// CreateEntry 创建新的讨论回复
	// - 意图: 将回复挂到指定讨论下，调用方保证讨论存在
	CreateEntry(ctx context.Context, db *gorm.DB, entry *entities.DiscussionEntry) error

	// GetEntryByID 根据 ID 检索回复
	// - 注意事项: 若回复不存在，返回 commonerrors.ErrRepoNotFound
	GetEntryByID(ctx context.Context, id uint64) (*entities.DiscussionEntry, error)

	// ListEntriesByDiscussionID 按讨论列出全部回复，按 ID 升序（先发的在前）
	// - 原生 SQL: SELECT * FROM discussion_entries WHERE discussion_id = ? AND deleted_at IS NULL ORDER BY id
	ListEntriesByDiscussionID(ctx context.Context, discussionID uint64) ([]*entities.DiscussionEntry, error)

	// UpdateEntryText 更新回复正文
	UpdateEntryText(ctx context.Context, id uint64, text string) error

	// DeleteEntry 对指定回复执行软删除
	DeleteEntry(ctx context.Context, db *gorm.DB, id uint64) error

	// DeleteEntriesByDiscussionID 软删除某讨论下的全部回复（随讨论删除时使用）
	DeleteEntriesByDiscussionID(ctx context.Context, db *gorm.DB, discussionID uint64) error
}

type discussionEntryRepository struct {
	db *gorm.DB
}

// NewDiscussionEntryRepository 是 discussionEntryRepository 的构造函数。
func NewDiscussionEntryRepository(db *gorm.DB) DiscussionEntryRepository {
	return &discussionEntryRepository{db: db}
}

func (r *discussionEntryRepository) CreateEntry(ctx context.Context, db *gorm.DB, entry *entities.DiscussionEntry) error {
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	return nil
}

func (r *discussionEntryRepository) GetEntryByID(ctx context.Context, id uint64) (*entities.DiscussionEntry, error) {
	var entry entities.DiscussionEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *discussionEntryRepository) ListEntriesByDiscussionID(ctx context.Context, discussionID uint64) ([]*entities.DiscussionEntry, error) {
	var entries []*entities.DiscussionEntry
	err := r.db.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *discussionEntryRepository) UpdateEntryText(ctx context.Context, id uint64, text string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.DiscussionEntry{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"text":       text,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *discussionEntryRepository) DeleteEntry(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.DiscussionEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *discussionEntryRepository) DeleteEntriesByDiscussionID(ctx context.Context, db *gorm.DB, discussionID uint64) error {
	// 讨论下没有回复也算成功，不检查 RowsAffected
	return db.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Delete(&entities.DiscussionEntry{}).Error
}
