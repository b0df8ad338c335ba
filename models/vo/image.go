package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// ImageResponse 定义了图片的响应数据结构
// - 对外只暴露 id、访问 URL 和创建时间；文件二进制与对象键不对外
type ImageResponse struct {
	ID           uint64    `json:"id"`            // 图片ID
	FileURL      string    `json:"file_url"`      // 图片公开访问 URL
	CreationDate time.Time `json:"creation_date"` // 创建时间
}

// OrganizationImageResponse 定义了组织下图片列表项的响应数据结构
type OrganizationImageResponse struct {
	Image         *ImageResponse `json:"image"`          // 图片信息
	SequenceIndex int            `json:"sequence_index"` // 图片在组织序列中的位置
}

// ListOrganizationImagesResponse 组织图片列表的响应结构
type ListOrganizationImagesResponse struct {
	OrgID  uint64                       `json:"org_id"` // 组织ID
	Images []*OrganizationImageResponse `json:"images"` // 按 sequence_index 升序排列的图片列表
}

// NewImageResponseFromEntity 将图片实体转换为响应VO
func NewImageResponseFromEntity(img *entities.Image) *ImageResponse {
	if img == nil {
		return nil
	}
	return &ImageResponse{
		ID:           img.ID,
		FileURL:      img.FileURL,
		CreationDate: img.CreatedAt,
	}
}
