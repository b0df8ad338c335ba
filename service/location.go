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

// LocationService 定义了地点的业务逻辑接口（透传类记录）。
type LocationService interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*vo.LocationResponse, error)
	GetLocationByID(ctx context.Context, locationID uint64) (*vo.LocationResponse, error)
	ListLocations(ctx context.Context) ([]*vo.LocationResponse, error)
	UpdateLocation(ctx context.Context, locationID uint64, req *dto.UpdateLocationRequest) (*vo.LocationResponse, error)
	DeleteLocation(ctx context.Context, locationID uint64) error
}

type locationService struct {
	locationRepo mysql.LocationRepository
	db           *gorm.DB
	logger       *core.ZapLogger
}

// NewLocationService 是 locationService 的构造函数。
func NewLocationService(db *gorm.DB, locationRepo mysql.LocationRepository, logger *core.ZapLogger) LocationService {
	return &locationService{
		locationRepo: locationRepo,
		db:           db,
		logger:       logger,
	}
}

func (s *locationService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*vo.LocationResponse, error) {
	location := &entities.Location{
		Lat:         req.Lat,
		Lon:         req.Lon,
		Bbox:        req.Bbox,
		DisplayName: req.DisplayName,
	}
	if err := s.locationRepo.CreateLocation(ctx, s.db, location); err != nil {
		s.logger.Error("创建地点失败", zap.Error(err), zap.String("display_name", req.DisplayName))
		return nil, err
	}
	return vo.NewLocationResponseFromEntity(location), nil
}

func (s *locationService) GetLocationByID(ctx context.Context, locationID uint64) (*vo.LocationResponse, error) {
	location, err := s.locationRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return vo.NewLocationResponseFromEntity(location), nil
}

func (s *locationService) ListLocations(ctx context.Context) ([]*vo.LocationResponse, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	return vo.NewLocationResponsesFromEntities(locations), nil
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID uint64, req *dto.UpdateLocationRequest) (*vo.LocationResponse, error) {
	if err := s.locationRepo.UpdateLocation(ctx, locationID, req.Lat, req.Lon, req.Bbox, req.DisplayName); err != nil {
		return nil, err
	}
	updated, err := s.locationRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return vo.NewLocationResponseFromEntity(updated), nil
}

func (s *locationService) DeleteLocation(ctx context.Context, locationID uint64) error {
	return s.locationRepo.DeleteLocation(ctx, s.db, locationID)
}
