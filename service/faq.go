package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// FaqService 定义了常见问题条目的业务逻辑接口（透传类记录）。
type FaqService interface {
	CreateFaq(ctx context.Context, req *dto.CreateFaqRequest) (*vo.FaqResponse, error)
	GetFaqByID(ctx context.Context, faqID uint64) (*vo.FaqResponse, error)
	ListFaqs(ctx context.Context) ([]*vo.FaqResponse, error)
	UpdateFaq(ctx context.Context, faqID uint64, req *dto.UpdateFaqRequest) (*vo.FaqResponse, error)
	DeleteFaq(ctx context.Context, faqID uint64) error
}

type faqService struct {
	faqRepo mysql.FaqRepository
	db      *gorm.DB
	logger  *core.ZapLogger
}

// NewFaqService 是 faqService 的构造函数。
func NewFaqService(db *gorm.DB, faqRepo mysql.FaqRepository, logger *core.ZapLogger) FaqService {
	return &faqService{
		faqRepo: faqRepo,
		db:      db,
		logger:  logger,
	}
}

func (s *faqService) CreateFaq(ctx context.Context, req *dto.CreateFaqRequest) (*vo.FaqResponse, error) {
	faq := &entities.Faq{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
	}
	if err := s.faqRepo.CreateFaq(ctx, s.db, faq); err != nil {
		s.logger.Error("创建常见问题条目失败", zap.Error(err))
		return nil, err
	}
	return vo.NewFaqResponseFromEntity(faq), nil
}

func (s *faqService) GetFaqByID(ctx context.Context, faqID uint64) (*vo.FaqResponse, error) {
	faq, err := s.faqRepo.GetFaqByID(ctx, faqID)
	if err != nil {
		return nil, err
	}
	return vo.NewFaqResponseFromEntity(faq), nil
}

func (s *faqService) ListFaqs(ctx context.Context) ([]*vo.FaqResponse, error) {
	faqs, err := s.faqRepo.ListFaqs(ctx)
	if err != nil {
		return nil, err
	}
	return vo.NewFaqResponsesFromEntities(faqs), nil
}

func (s *faqService) UpdateFaq(ctx context.Context, faqID uint64, req *dto.UpdateFaqRequest) (*vo.FaqResponse, error) {
	if err := s.faqRepo.UpdateFaq(ctx, faqID, req.Question, req.Answer, req.Order); err != nil {
		return nil, err
	}
	updated, err := s.faqRepo.GetFaqByID(ctx, faqID)
	if err != nil {
		return nil, err
	}
	return vo.NewFaqResponseFromEntity(updated), nil
}

func (s *faqService) DeleteFaq(ctx context.Context, faqID uint64) error {
	return s.faqRepo.DeleteFaq(ctx, s.db, faqID)
}
