package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// ResourceService 定义了资源的业务逻辑接口（透传类记录）。
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*vo.ResourceResponse, error)
	GetResourceByID(ctx context.Context, resourceID uint64) (*vo.ResourceResponse, error)
	ListResources(ctx context.Context, req *dto.ListResourcesRequest) (*vo.ListResourcesResponse, error)
	UpdateResource(ctx context.Context, resourceID uint64, req *dto.UpdateResourceRequest) (*vo.ResourceResponse, error)
	DeleteResource(ctx context.Context, resourceID uint64) error
}

type resourceService struct {
	resourceRepo mysql.ResourceRepository
	db           *gorm.DB
	kafkaSvc     *producer.KafkaProducer // 可为 nil
	logger       *core.ZapLogger
}

// NewResourceService 是 resourceService 的构造函数。
func NewResourceService(db *gorm.DB, resourceRepo mysql.ResourceRepository, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		db:           db,
		kafkaSvc:     kafkaSvc,
		logger:       logger,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*vo.ResourceResponse, error) {
	resource := &entities.Resource{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Category:    req.Category,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.resourceRepo.CreateResource(ctx, s.db, resource); err != nil {
		s.logger.Error("创建资源失败", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}
	return vo.NewResourceResponseFromEntity(resource), nil
}

func (s *resourceService) GetResourceByID(ctx context.Context, resourceID uint64) (*vo.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return vo.NewResourceResponseFromEntity(resource), nil
}

func (s *resourceService) ListResources(ctx context.Context, req *dto.ListResourcesRequest) (*vo.ListResourcesResponse, error) {
	resources, nextCursor, err := s.resourceRepo.ListResourcesByCursor(ctx, req.Category, req.Cursor, req.PageSize)
	if err != nil {
		return nil, err
	}
	return &vo.ListResourcesResponse{
		Resources:  vo.NewResourceResponsesFromEntities(resources),
		NextCursor: nextCursor,
	}, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, resourceID uint64, req *dto.UpdateResourceRequest) (*vo.ResourceResponse, error) {
	if err := s.resourceRepo.UpdateResource(ctx, resourceID, req.Name, req.Description, req.URL, req.Category); err != nil {
		return nil, err
	}
	updated, err := s.resourceRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return vo.NewResourceResponseFromEntity(updated), nil
}

func (s *resourceService) DeleteResource(ctx context.Context, resourceID uint64) error {
	if err := s.resourceRepo.DeleteResource(ctx, s.db, resourceID); err != nil {
		return err
	}

	if s.kafkaSvc != nil {
		go func(id uint64) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendContentDeletedEvent(bgCtx, "resource", id); kafkaErr != nil {
				s.logger.Error("发送 Kafka 删除事件失败", zap.Error(kafkaErr), zap.Uint64("resource_id", id))
			}
		}(resourceID)
	}
	return nil
}
