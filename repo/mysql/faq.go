package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// FaqRepository 定义了常见问题条目的持久化操作接口。
type FaqRepository interface {
	// CreateFaq 创建新的常见问题条目
	CreateFaq(ctx context.Context, db *gorm.DB, faq *entities.Faq) error

	// GetFaqByID 根据 ID 检索条目
	// - 注意事项: 若条目不存在，返回 commonerrors.ErrRepoNotFound
	GetFaqByID(ctx context.Context, id uint64) (*entities.Faq, error)

	// ListFaqs 列出全部条目，按展示顺序升序、同序按 ID 升序
	ListFaqs(ctx context.Context) ([]*entities.Faq, error)

	// UpdateFaq 更新条目字段，nil 表示不更新对应字段
	UpdateFaq(ctx context.Context, id uint64, question *string, answer *string, order *int) error

	// DeleteFaq 对指定条目执行软删除
	DeleteFaq(ctx context.Context, db *gorm.DB, id uint64) error
}

type faqRepository struct {
	db *gorm.DB
}

// NewFaqRepository 是 faqRepository 的构造函数。
func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) CreateFaq(ctx context.Context, db *gorm.DB, faq *entities.Faq) error {
	if err := db.WithContext(ctx).Create(faq).Error; err != nil {
		return err
	}
	return nil
}

func (r *faqRepository) GetFaqByID(ctx context.Context, id uint64) (*entities.Faq, error) {
	var faq entities.Faq
	err := r.db.WithContext(ctx).First(&faq, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) ListFaqs(ctx context.Context) ([]*entities.Faq, error) {
	var faqs []*entities.Faq
	err := r.db.WithContext(ctx).
		Order("`order` ASC").
		Order("id ASC").
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) UpdateFaq(ctx context.Context, id uint64, question *string, answer *string, order *int) error {
	updateMap := make(map[string]interface{})

	if question != nil {
		updateMap["question"] = *question
	}
	if answer != nil {
		updateMap["answer"] = *answer
	}
	if order != nil {
		updateMap["order"] = *order
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Faq{}).
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

func (r *faqRepository) DeleteFaq(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Faq{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
