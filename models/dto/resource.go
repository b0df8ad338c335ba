package dto

// CreateResourceRequest 定义了创建资源的请求数据结构
type CreateResourceRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=255"`          // 资源名称，必填
	Description string `json:"description" form:"description" binding:"omitempty"`  // 资源描述，可选
	URL         string `json:"url" form:"url" binding:"required,url"`                // 资源链接，必填，需为有效URL
	Category    string `json:"category" form:"category" binding:"omitempty,max=100"` // 分类，可选
	CreatedBy   string `json:"created_by" form:"created_by" binding:"required,uuid"` // 创建者ID，必填，UUID格式
}

// UpdateResourceRequest 定义了更新资源的请求数据结构
// - 指针字段为 nil 表示不更新对应字段
type UpdateResourceRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`     // 资源名称，可选
	Description *string `json:"description" binding:"omitempty"`      // 资源描述，可选
	URL         *string `json:"url" binding:"omitempty,url"`          // 资源链接，可选
	Category    *string `json:"category" binding:"omitempty,max=100"` // 分类，可选
}

// ListResourcesRequest 定义分页查询资源列表的请求数据结构（游标加载）
type ListResourcesRequest struct {
	Category *string `json:"category" form:"category" binding:"omitempty,max=100"`       // 按分类筛选，可选
	Cursor   *uint64 `json:"cursor" form:"cursor"`                                       // 游标（上次加载的最后一条资源的 ID），可选
	PageSize int     `json:"page_size" form:"page_size" binding:"required,gt=0,lte=100"` // 每页数量，必填，1-100
}
