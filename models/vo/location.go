package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// LocationResponse 定义了地点的响应数据结构
type LocationResponse struct {
	ID          uint64    `json:"id"`           // 地点ID
	Lat         string    `json:"lat"`          // 纬度
	Lon         string    `json:"lon"`          // 经度
	Bbox        string    `json:"bbox"`         // 外接矩形
	DisplayName string    `json:"display_name"` // 显示名称
	CreatedAt   time.Time `json:"created_at"`   // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`   // 更新时间
}

// NewLocationResponseFromEntity 将地点实体转换为响应VO
func NewLocationResponseFromEntity(l *entities.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:          l.ID,
		Lat:         l.Lat,
		Lon:         l.Lon,
		Bbox:        l.Bbox,
		DisplayName: l.DisplayName,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// NewLocationResponsesFromEntities 将地点实体列表转换为响应VO列表
func NewLocationResponsesFromEntities(locations []*entities.Location) []*LocationResponse {
	if len(locations) == 0 {
		return []*LocationResponse{}
	}
	responses := make([]*LocationResponse, 0, len(locations))
	for _, l := range locations {
		if l == nil {
			continue
		}
		responses = append(responses, NewLocationResponseFromEntity(l))
	}
	return responses
}
