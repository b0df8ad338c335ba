package dto

// CreateDiscussionRequest 定义了创建讨论的请求数据结构
// - 添加了 binding 标签用于输入验证
type CreateDiscussionRequest struct {
	Title     string `json:"title" form:"title" binding:"required,max=255"`       // 讨论标题，必填，最大255字符
	Category  string `json:"category" form:"category" binding:"omitempty,max=100"` // 分类，可选
	CreatedBy string `json:"created_by" form:"created_by" binding:"required,uuid"` // 创建者ID，必填，UUID格式
}

// UpdateDiscussionRequest 定义了更新讨论的请求数据结构
// - 指针字段为 nil 表示不更新对应字段（部分更新）
type UpdateDiscussionRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`    // 讨论标题，可选
	Category *string `json:"category" binding:"omitempty,max=100"` // 分类，可选
}

// ListDiscussionsRequest 定义分页查询讨论列表的请求数据结构（游标加载）
type ListDiscussionsRequest struct {
	Category *string `json:"category" form:"category" binding:"omitempty,max=100"` // 按分类筛选，可选
	Cursor   *uint64 `json:"cursor" form:"cursor"`                                 // 游标（上次加载的最后一条讨论的 ID），可选
	PageSize int     `json:"page_size" form:"page_size" binding:"required,gt=0,lte=100"` // 每页数量，必填，1-100
}

// CreateDiscussionEntryRequest 定义了在讨论下创建回复的请求数据结构
// - DiscussionID 来自路径参数，不在请求体中
type CreateDiscussionEntryRequest struct {
	Text      string `json:"text" form:"text" binding:"required"`                  // 回复正文，必填
	CreatedBy string `json:"created_by" form:"created_by" binding:"required,uuid"` // 回复者ID，必填，UUID格式
}

// UpdateDiscussionEntryRequest 定义了更新讨论回复的请求数据结构
type UpdateDiscussionEntryRequest struct {
	Text *string `json:"text" binding:"omitempty"` // 回复正文，可选
}
