package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// DiscussionResponse 定义了讨论的响应数据结构
type DiscussionResponse struct {
	ID        uint64    `json:"id"`         // 讨论ID
	Title     string    `json:"title"`      // 讨论标题
	Category  string    `json:"category"`   // 分类
	CreatedBy string    `json:"created_by"` // 创建者ID
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间
}

// ListDiscussionsResponse 讨论列表游标加载的响应结构
type ListDiscussionsResponse struct {
	Discussions []*DiscussionResponse `json:"discussions"` // 讨论列表
	NextCursor  *uint64               `json:"next_cursor"` // 下一个游标，nil 表示无更多数据
}

// DiscussionEntryResponse 定义了讨论回复的响应数据结构
type DiscussionEntryResponse struct {
	ID           uint64    `json:"id"`            // 回复ID
	DiscussionID uint64    `json:"discussion_id"` // 所属讨论ID
	Text         string    `json:"text"`          // 回复正文
	CreatedBy    string    `json:"created_by"`    // 回复者ID
	CreatedAt    time.Time `json:"created_at"`    // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`    // 更新时间
}

// NewDiscussionResponseFromEntity 将讨论实体转换为响应VO
func NewDiscussionResponseFromEntity(d *entities.Discussion) *DiscussionResponse {
	if d == nil {
		return nil
	}
	return &DiscussionResponse{
		ID:        d.ID,
		Title:     d.Title,
		Category:  d.Category,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// NewDiscussionResponsesFromEntities 将讨论实体列表转换为响应VO列表
func NewDiscussionResponsesFromEntities(discussions []*entities.Discussion) []*DiscussionResponse {
	if len(discussions) == 0 {
		return []*DiscussionResponse{} // 返回空切片而不是nil，便于前端处理
	}
	responses := make([]*DiscussionResponse, 0, len(discussions))
	for _, d := range discussions {
		if d == nil {
			continue
		}
		responses = append(responses, NewDiscussionResponseFromEntity(d))
	}
	return responses
}

// NewDiscussionEntryResponseFromEntity 将讨论回复实体转换为响应VO
func NewDiscussionEntryResponseFromEntity(e *entities.DiscussionEntry) *DiscussionEntryResponse {
	if e == nil {
		return nil
	}
	return &DiscussionEntryResponse{
		ID:           e.ID,
		DiscussionID: e.DiscussionID,
		Text:         e.Text,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// NewDiscussionEntryResponsesFromEntities 将讨论回复实体列表转换为响应VO列表
func NewDiscussionEntryResponsesFromEntities(entries []*entities.DiscussionEntry) []*DiscussionEntryResponse {
	if len(entries) == 0 {
		return []*DiscussionEntryResponse{}
	}
	responses := make([]*DiscussionEntryResponse, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		responses = append(responses, NewDiscussionEntryResponseFromEntity(e))
	}
	return responses
}
