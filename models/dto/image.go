package dto

// CreateImageRequest 定义了上传图片时随表单提交的附加字段
// - 文件本身以 multipart/form-data 的 "file_object" 字段上传，不在 DTO 中；
//   服务层以显式参数接收文件，避免从请求上下文隐式取值。
type CreateImageRequest struct {
	// 组织ID，可选。提供时会在图片创建后建立组织-图片挂载记录，
	// 其序列位置为该组织当前已有挂载数（追加到末尾）。
	OrganizationID *uint64 `json:"organization_id" form:"organization_id" binding:"omitempty,gt=0"`
}

// ListImagesByOrganizationRequest 定义按组织查询图片列表的请求数据结构
type ListImagesByOrganizationRequest struct {
	OrgID uint64 `json:"org_id" form:"org_id" binding:"required,gt=0"` // 组织ID，必填
}
