package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// ResourceResponse 定义了资源的响应数据结构
type ResourceResponse struct {
	ID          uint64    `json:"id"`          // 资源ID
	Name        string    `json:"name"`        // 资源名称
	Description string    `json:"description"` // 资源描述
	URL         string    `json:"url"`         // 资源链接
	Category    string    `json:"category"`    // 分类
	CreatedBy   string    `json:"created_by"`  // 创建者ID
	CreatedAt   time.Time `json:"created_at"`  // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`  // 更新时间
}

// ListResourcesResponse 资源列表游标加载的响应结构
type ListResourcesResponse struct {
	Resources  []*ResourceResponse `json:"resources"`   // 资源列表
	NextCursor *uint64             `json:"next_cursor"` // 下一个游标，nil 表示无更多数据
}

// NewResourceResponseFromEntity 将资源实体转换为响应VO
func NewResourceResponseFromEntity(r *entities.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}
	return &ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Category:    r.Category,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewResourceResponsesFromEntities 将资源实体列表转换为响应VO列表
func NewResourceResponsesFromEntities(resources []*entities.Resource) []*ResourceResponse {
	if len(resources) == 0 {
		return []*ResourceResponse{}
	}
	responses := make([]*ResourceResponse, 0, len(resources))
	for _, r := range resources {
		if r == nil {
			continue
		}
		responses = append(responses, NewResourceResponseFromEntity(r))
	}
	return responses
}
