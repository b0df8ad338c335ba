package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// DiscussionService 定义了处理讨论及其回复业务逻辑的接口。
// 讨论与回复属于透传类记录：所有声明字段直接读写，只有字段级绑定校验。
type DiscussionService interface {
	// CreateDiscussion 创建新讨论。
	CreateDiscussion(ctx context.Context, req *dto.CreateDiscussionRequest) (*vo.DiscussionResponse, error)

	// GetDiscussionByID 获取单条讨论。
	GetDiscussionByID(ctx context.Context, discussionID uint64) (*vo.DiscussionResponse, error)

	// ListDiscussions 游标分页查询讨论列表。
	ListDiscussions(ctx context.Context, req *dto.ListDiscussionsRequest) (*vo.ListDiscussionsResponse, error)

	// UpdateDiscussion 部分更新讨论字段。
	UpdateDiscussion(ctx context.Context, discussionID uint64, req *dto.UpdateDiscussionRequest) (*vo.DiscussionResponse, error)

	// DeleteDiscussion 软删除讨论及其全部回复（原子操作），并异步发送删除事件。
	DeleteDiscussion(ctx context.Context, discussionID uint64) error

	// CreateEntry 在指定讨论下创建回复；讨论不存在时返回 ErrRepoNotFound。
	CreateEntry(ctx context.Context, discussionID uint64, req *dto.CreateDiscussionEntryRequest) (*vo.DiscussionEntryResponse, error)

	// ListEntries 列出指定讨论下的全部回复，先发的在前。
	ListEntries(ctx context.Context, discussionID uint64) ([]*vo.DiscussionEntryResponse, error)

	// UpdateEntry 更新回复正文。
	UpdateEntry(ctx context.Context, entryID uint64, req *dto.UpdateDiscussionEntryRequest) (*vo.DiscussionEntryResponse, error)

	// DeleteEntry 软删除单条回复。
	DeleteEntry(ctx context.Context, entryID uint64) error
}

// discussionService 是 DiscussionService 接口的具体实现。
type discussionService struct {
	discussionRepo mysql.DiscussionRepository      // 讨论的 MySQL 操作
	entryRepo      mysql.DiscussionEntryRepository // 讨论回复的 MySQL 操作
	db             *gorm.DB                        // GORM 数据库实例，主要用于事务管理
	kafkaSvc       *producer.KafkaProducer         // Kafka 生产者，可为 nil
	logger         *core.ZapLogger
}

// NewDiscussionService 是 discussionService 的构造函数，通过依赖注入初始化服务实例。
func NewDiscussionService(db *gorm.DB, discussionRepo mysql.DiscussionRepository, entryRepo mysql.DiscussionEntryRepository, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) DiscussionService {
	return &discussionService{
		discussionRepo: discussionRepo,
		entryRepo:      entryRepo,
		db:             db,
		kafkaSvc:       kafkaSvc,
		logger:         logger,
	}
}

func (s *discussionService) CreateDiscussion(ctx context.Context, req *dto.CreateDiscussionRequest) (*vo.DiscussionResponse, error) {
	discussion := &entities.Discussion{
		Title:     req.Title,
		Category:  req.Category,
		CreatedBy: req.CreatedBy,
	}
	if err := s.discussionRepo.CreateDiscussion(ctx, s.db, discussion); err != nil {
		s.logger.Error("创建讨论失败", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}
	return vo.NewDiscussionResponseFromEntity(discussion), nil
}

func (s *discussionService) GetDiscussionByID(ctx context.Context, discussionID uint64) (*vo.DiscussionResponse, error) {
	discussion, err := s.discussionRepo.GetDiscussionByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	return vo.NewDiscussionResponseFromEntity(discussion), nil
}

func (s *discussionService) ListDiscussions(ctx context.Context, req *dto.ListDiscussionsRequest) (*vo.ListDiscussionsResponse, error) {
	discussions, nextCursor, err := s.discussionRepo.ListDiscussionsByCursor(ctx, req.Category, req.Cursor, req.PageSize)
	if err != nil {
		return nil, err
	}
	return &vo.ListDiscussionsResponse{
		Discussions: vo.NewDiscussionResponsesFromEntities(discussions),
		NextCursor:  nextCursor,
	}, nil
}

func (s *discussionService) UpdateDiscussion(ctx context.Context, discussionID uint64, req *dto.UpdateDiscussionRequest) (*vo.DiscussionResponse, error) {
	if err := s.discussionRepo.UpdateDiscussion(ctx, discussionID, req.Title, req.Category); err != nil {
		return nil, err
	}
	updated, err := s.discussionRepo.GetDiscussionByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	return vo.NewDiscussionResponseFromEntity(updated), nil
}

// DeleteDiscussion 在一个事务中软删除讨论及其全部回复。
func (s *discussionService) DeleteDiscussion(ctx context.Context, discussionID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.entryRepo.DeleteEntriesByDiscussionID(ctx, tx, discussionID); repoErr != nil {
			return fmt.Errorf("软删除讨论回复失败: %w", repoErr)
		}
		if repoErr := s.discussionRepo.DeleteDiscussion(ctx, tx, discussionID); repoErr != nil {
			return fmt.Errorf("软删除讨论失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.kafkaSvc != nil {
		go func(id uint64) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendContentDeletedEvent(bgCtx, "discussion", id); kafkaErr != nil {
				s.logger.Error("发送 Kafka 删除事件失败", zap.Error(kafkaErr), zap.Uint64("discussion_id", id))
			}
		}(discussionID)
	}

	s.logger.Info("讨论及其回复（软）删除请求处理完成", zap.Uint64("discussion_id", discussionID))
	return nil
}

func (s *discussionService) CreateEntry(ctx context.Context, discussionID uint64, req *dto.CreateDiscussionEntryRequest) (*vo.DiscussionEntryResponse, error) {
	// 回复必须挂在存在的讨论下
	if _, err := s.discussionRepo.GetDiscussionByID(ctx, discussionID); err != nil {
		return nil, err
	}

	entry := &entities.DiscussionEntry{
		DiscussionID: discussionID,
		Text:         req.Text,
		CreatedBy:    req.CreatedBy,
	}
	if err := s.entryRepo.CreateEntry(ctx, s.db, entry); err != nil {
		s.logger.Error("创建讨论回复失败", zap.Error(err), zap.Uint64("discussion_id", discussionID))
		return nil, err
	}
	return vo.NewDiscussionEntryResponseFromEntity(entry), nil
}

func (s *discussionService) ListEntries(ctx context.Context, discussionID uint64) ([]*vo.DiscussionEntryResponse, error) {
	entries, err := s.entryRepo.ListEntriesByDiscussionID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	return vo.NewDiscussionEntryResponsesFromEntities(entries), nil
}

func (s *discussionService) UpdateEntry(ctx context.Context, entryID uint64, req *dto.UpdateDiscussionEntryRequest) (*vo.DiscussionEntryResponse, error) {
	if req.Text != nil {
		if err := s.entryRepo.UpdateEntryText(ctx, entryID, *req.Text); err != nil {
			return nil, err
		}
	}
	updated, err := s.entryRepo.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return vo.NewDiscussionEntryResponseFromEntity(updated), nil
}

func (s *discussionService) DeleteEntry(ctx context.Context, entryID uint64) error {
	return s.entryRepo.DeleteEntry(ctx, s.db, entryID)
}
