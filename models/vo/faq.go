package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// FaqResponse 定义了常见问题条目的响应数据结构
type FaqResponse struct {
	ID        uint64    `json:"id"`         // 条目ID
	Question  string    `json:"question"`   // 问题文本
	Answer    string    `json:"answer"`     // 答案文本
	Order     int       `json:"order"`      // 展示顺序
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间
}

// NewFaqResponseFromEntity 将常见问题实体转换为响应VO
func NewFaqResponseFromEntity(f *entities.Faq) *FaqResponse {
	if f == nil {
		return nil
	}
	return &FaqResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Order:     f.Order,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// NewFaqResponsesFromEntities 将常见问题实体列表转换为响应VO列表
func NewFaqResponsesFromEntities(faqs []*entities.Faq) []*FaqResponse {
	if len(faqs) == 0 {
		return []*FaqResponse{}
	}
	responses := make([]*FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		if f == nil {
			continue
		}
		responses = append(responses, NewFaqResponseFromEntity(f))
	}
	return responses
}
