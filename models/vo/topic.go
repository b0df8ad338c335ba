package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// TopicResponse 定义了主题的响应数据结构
type TopicResponse struct {
	ID              uint64     `json:"id"`               // 主题ID
	Name            string     `json:"name"`             // 主题名称
	Description     string     `json:"description"`      // 主题描述
	Active          bool       `json:"active"`           // 是否激活
	DeprecationDate *time.Time `json:"deprecation_date"` // 弃用时间，激活主题恒为 null
	CreatedAt       time.Time  `json:"created_at"`       // 创建时间
	UpdatedAt       time.Time  `json:"updated_at"`       // 更新时间
}

// ListTopicsResponse 主题列表的响应结构
type ListTopicsResponse struct {
	Topics []*TopicResponse `json:"topics"` // 主题列表
}

// NewTopicResponseFromEntity 将主题实体转换为响应VO
func NewTopicResponseFromEntity(t *entities.Topic) *TopicResponse {
	if t == nil {
		return nil
	}
	return &TopicResponse{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Active:          t.Active,
		DeprecationDate: t.DeprecationDate,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// NewTopicResponsesFromEntities 将主题实体列表转换为响应VO列表
func NewTopicResponsesFromEntities(topics []*entities.Topic) []*TopicResponse {
	if len(topics) == 0 {
		return []*TopicResponse{}
	}
	responses := make([]*TopicResponse, 0, len(topics))
	for _, t := range topics {
		if t == nil {
			continue
		}
		responses = append(responses, NewTopicResponseFromEntity(t))
	}
	return responses
}
