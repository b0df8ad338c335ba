package dto

// CreateFaqRequest 定义了创建常见问题条目的请求数据结构
type CreateFaqRequest struct {
	Question string `json:"question" form:"question" binding:"required,max=500"` // 问题文本，必填，最大500字符
	Answer   string `json:"answer" form:"answer" binding:"required"`             // 答案文本，必填
	Order    int    `json:"order" form:"order" binding:"omitempty,gte=0"`        // 展示顺序，可选，大于等于0
}

// UpdateFaqRequest 定义了更新常见问题条目的请求数据结构
// - 指针字段为 nil 表示不更新对应字段
type UpdateFaqRequest struct {
	Question *string `json:"question" binding:"omitempty,max=500"` // 问题文本，可选
	Answer   *string `json:"answer" binding:"omitempty"`           // 答案文本，可选
	Order    *int    `json:"order" binding:"omitempty,gte=0"`      // 展示顺序，可选
}
