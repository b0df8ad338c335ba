package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/events"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// ImageService 定义了处理图片上传与挂载业务逻辑的接口。
type ImageService interface {
	// CreateImage 处理图片上传的业务流程。
	// - 文件与组织ID以显式参数传入，不从请求上下文隐式取值。
	// - 校验顺序: 文件必须存在 -> 文件大小不超过配置上限；任一失败都发生在任何写入之前。
	// - 二进制上传到 COS 后，图片行与（可选的）组织挂载行在同一个事务中落库；
	//   挂载行的 SequenceIndex 取该组织当前挂载数（追加到末尾，删除后不回收位置）。
	// - 成功后异步发送图片创建事件。
	CreateImage(ctx context.Context, file *multipart.FileHeader, req *dto.CreateImageRequest) (*vo.ImageResponse, error)

	// GetImageByID 获取单张图片的元数据。
	GetImageByID(ctx context.Context, imageID uint64) (*vo.ImageResponse, error)

	// ListImagesByOrganization 按组织列出挂载的图片，按 SequenceIndex 升序。
	ListImagesByOrganization(ctx context.Context, orgID uint64) (*vo.ListOrganizationImagesResponse, error)

	// DeleteImage 删除图片：软删除元数据行与挂载行，随后异步清理 COS 对象并发送删除事件。
	DeleteImage(ctx context.Context, imageID uint64) error
}

// imageService 是 ImageService 接口的具体实现。
type imageService struct {
	imageRepo    mysql.ImageRepository             // 图片元数据的 MySQL 操作
	orgImageRepo mysql.OrganizationImageRepository // 组织-图片挂载记录的 MySQL 操作
	cosClient    dependencies.COSClientInterface   // cos云服务依赖
	db           *gorm.DB                          // GORM 数据库实例，主要用于事务管理
	kafkaSvc     *producer.KafkaProducer           // Kafka 生产者，可为 nil (未配置 brokers 时)
	uploadCfg    config.UploadConfig               // 上传限制配置
	logger       *core.ZapLogger                   // 日志记录器
}

// NewImageService 是 imageService 的构造函数，通过依赖注入初始化服务实例。
func NewImageService(db *gorm.DB, imageRepo mysql.ImageRepository, orgImageRepo mysql.OrganizationImageRepository, cosClient dependencies.COSClientInterface, kafkaSvc *producer.KafkaProducer, uploadCfg config.UploadConfig, logger *core.ZapLogger) ImageService {
	return &imageService{
		imageRepo:    imageRepo,
		orgImageRepo: orgImageRepo,
		cosClient:    cosClient,
		db:           db,
		kafkaSvc:     kafkaSvc,
		uploadCfg:    uploadCfg,
		logger:       logger,
	}
}

// generateImageObjectKey 创建一个唯一的 COS 对象键。
// 规则：content/images/YYYYMMDD/uuid.ext
func (s *imageService) generateImageObjectKey(originalFilename string) string {
	datePrefix := time.Now().Format("20060102") // YYYYMMDD
	extension := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s%s/%s%s",
		constant.COSObjectKeyPrefixContentImages,
		datePrefix,
		uuid.NewString(),
		extension,
	)
}

// validateImageFile 校验上传文件，失败返回 ValidationError。
// 网关层的请求体大小限制在实践中并不总是生效，这里在持久化前再按配置上限检查一次。
func (s *imageService) validateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return myErrors.NewValidationError("No file was submitted.")
	}
	if maxSize := s.uploadCfg.ImageMaxFileSize; maxSize > 0 && file.Size > maxSize {
		return myErrors.NewValidationError(fmt.Sprintf(
			"The file size (%d bytes) is too large. The maximum file size is %d bytes.",
			file.Size, maxSize,
		))
	}
	return nil
}

// CreateImage 处理图片上传，包括 COS 上传和数据库操作。
func (s *imageService) CreateImage(ctx context.Context, file *multipart.FileHeader, req *dto.CreateImageRequest) (*vo.ImageResponse, error) {
	// 1. 校验在任何写入之前完成
	if err := s.validateImageFile(file); err != nil {
		return nil, err
	}

	// 2. 上传二进制到 COS
	src, err := file.Open()
	if err != nil {
		s.logger.Error("打开上传文件失败",
			zap.String("filename", file.Filename),
			zap.Error(err))
		return nil, fmt.Errorf("打开上传文件 %s 失败: %w", file.Filename, err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream" // 常见的默认值
		s.logger.Warn("未提供图片的内容类型，使用默认值",
			zap.String("filename", file.Filename),
			zap.String("defaultContentType", contentType))
	}

	objectKey := s.generateImageObjectKey(file.Filename)
	fileURL, err := s.cosClient.UploadFile(ctx, objectKey, src, file.Size, contentType)
	src.Close() // 在 UploadFile 使用完文件后关闭它。
	if err != nil {
		s.logger.Error("上传图片到 COS 失败",
			zap.String("filename", file.Filename),
			zap.String("objectKey", objectKey),
			zap.Error(err))
		return nil, fmt.Errorf("上传图片 %s 到 COS 失败: %w", file.Filename, err)
	}

	// 3. 在事务中落库：图片行 + 可选的组织挂载行
	var createdImage *entities.Image
	var createdLink *entities.OrganizationImage

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		image := &entities.Image{
			FileURL:     fileURL,
			ObjectKey:   objectKey,
			FileSize:    file.Size,
			ContentType: contentType,
		}
		if repoErr := s.imageRepo.CreateImage(ctx, tx, image); repoErr != nil {
			return fmt.Errorf("创建图片记录失败: %w", repoErr)
		}
		createdImage = image

		// 请求携带组织ID时建立挂载记录，位置取该组织当前挂载数（追加到末尾）
		if req != nil && req.OrganizationID != nil {
			count, repoErr := s.orgImageRepo.CountByOrganization(ctx, tx, *req.OrganizationID)
			if repoErr != nil {
				return fmt.Errorf("统计组织已有图片数失败: %w", repoErr)
			}
			link := &entities.OrganizationImage{
				OrgID:         *req.OrganizationID,
				ImageID:       image.ID,
				SequenceIndex: int(count),
			}
			if repoErr := s.orgImageRepo.CreateLink(ctx, tx, link); repoErr != nil {
				return fmt.Errorf("创建组织图片挂载记录失败: %w", repoErr)
			}
			createdLink = link
		}
		return nil // 提交事务
	})

	if err != nil {
		s.logger.Error("图片创建事务失败", zap.Error(err))
		// 数据库事务失败时清理已上传的 COS 对象，避免孤立文件。
		// 清理失败只记录日志，不掩盖原始的数据库错误。
		if cleanupErr := s.cosClient.DeleteObject(context.Background(), objectKey); cleanupErr != nil {
			s.logger.Error("清理孤立的 COS 文件失败", zap.String("objectKey", objectKey), zap.Error(cleanupErr))
		}
		return nil, err
	}

	// --- 事务成功 ---

	// 4. 异步发送 Kafka 事件
	if s.kafkaSvc != nil {
		eventData := events.ImageEventData{
			ImageID:  createdImage.ID,
			FileURL:  createdImage.FileURL,
			FileSize: createdImage.FileSize,
		}
		if createdLink != nil {
			eventData.OrgID = &createdLink.OrgID
			seq := createdLink.SequenceIndex
			eventData.SequenceIndex = &seq
		}
		go func(data events.ImageEventData) {
			bgCtx := context.Background() // 为后台 goroutine 创建新的上下文
			if kafkaErr := s.kafkaSvc.SendImageCreatedEvent(bgCtx, data); kafkaErr != nil {
				s.logger.Error("发送 Kafka 图片创建事件失败", zap.Error(kafkaErr), zap.Uint64("image_id", data.ImageID))
			}
		}(eventData)
	}

	return vo.NewImageResponseFromEntity(createdImage), nil
}

// GetImageByID 实现获取单张图片元数据的逻辑。
func (s *imageService) GetImageByID(ctx context.Context, imageID uint64) (*vo.ImageResponse, error) {
	image, err := s.imageRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	return vo.NewImageResponseFromEntity(image), nil
}

// ListImagesByOrganization 实现按组织列出图片的逻辑。
func (s *imageService) ListImagesByOrganization(ctx context.Context, orgID uint64) (*vo.ListOrganizationImagesResponse, error) {
	links, err := s.orgImageRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		s.logger.Error("获取组织图片挂载记录失败", zap.Error(err), zap.Uint64("org_id", orgID))
		return nil, err
	}

	imageIDs := make([]uint64, 0, len(links))
	for _, link := range links {
		imageIDs = append(imageIDs, link.ImageID)
	}

	images, err := s.imageRepo.GetImagesByIDs(ctx, imageIDs)
	if err != nil {
		return nil, err
	}
	imagesByID := make(map[uint64]*entities.Image, len(images))
	for _, img := range images {
		imagesByID[img.ID] = img
	}

	// 按挂载记录的 SequenceIndex 顺序组装响应
	responses := make([]*vo.OrganizationImageResponse, 0, len(links))
	for _, link := range links {
		img, ok := imagesByID[link.ImageID]
		if !ok {
			// 挂载记录指向的图片行缺失（例如被直接删除），跳过并记录
			s.logger.Warn("组织挂载记录指向不存在的图片",
				zap.Uint64("org_id", orgID),
				zap.Uint64("image_id", link.ImageID))
			continue
		}
		responses = append(responses, &vo.OrganizationImageResponse{
			Image:         vo.NewImageResponseFromEntity(img),
			SequenceIndex: link.SequenceIndex,
		})
	}

	return &vo.ListOrganizationImagesResponse{
		OrgID:  orgID,
		Images: responses,
	}, nil
}

// DeleteImage 实现图片的删除逻辑。
func (s *imageService) DeleteImage(ctx context.Context, imageID uint64) error {
	// 1. 先取元数据，拿到 COS 对象键
	image, err := s.imageRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}

	// 2. 在事务中软删除挂载记录与图片行
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.orgImageRepo.DeleteLinksByImageID(ctx, tx, imageID); repoErr != nil {
			return fmt.Errorf("软删除组织图片挂载记录失败: %w", repoErr)
		}
		if repoErr := s.imageRepo.DeleteImage(ctx, tx, imageID); repoErr != nil {
			return fmt.Errorf("软删除图片记录失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 3. 异步清理 COS 对象并发送删除事件
	go func(objectKey string, id uint64) {
		bgCtx := context.Background()
		if cosErr := s.cosClient.DeleteObject(bgCtx, objectKey); cosErr != nil {
			s.logger.Error("删除 COS 对象失败", zap.Error(cosErr), zap.String("objectKey", objectKey))
		}
		if s.kafkaSvc != nil {
			if kafkaErr := s.kafkaSvc.SendContentDeletedEvent(bgCtx, "image", id); kafkaErr != nil {
				s.logger.Error("发送 Kafka 删除事件失败", zap.Error(kafkaErr), zap.Uint64("image_id", id))
			}
		}
	}(image.ObjectKey, imageID)

	s.logger.Info("图片及其挂载记录（软）删除请求处理完成", zap.Uint64("image_id", imageID))
	return nil
}
