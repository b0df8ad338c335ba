package dto

// CreateLocationRequest 定义了创建地点的请求数据结构
type CreateLocationRequest struct {
	Lat         string `json:"lat" form:"lat" binding:"required,latitude"`                // 纬度，必填
	Lon         string `json:"lon" form:"lon" binding:"required,longitude"`               // 经度，必填
	Bbox        string `json:"bbox" form:"bbox" binding:"omitempty,max=255"`              // 外接矩形，可选
	DisplayName string `json:"display_name" form:"display_name" binding:"required,max=255"` // 显示名称，必填
}

// UpdateLocationRequest 定义了更新地点的请求数据结构
// - 指针字段为 nil 表示不更新对应字段
type UpdateLocationRequest struct {
	Lat         *string `json:"lat" binding:"omitempty,latitude"`        // 纬度，可选
	Lon         *string `json:"lon" binding:"omitempty,longitude"`       // 经度，可选
	Bbox        *string `json:"bbox" binding:"omitempty,max=255"`        // 外接矩形，可选
	DisplayName *string `json:"display_name" binding:"omitempty,max=255"` // 显示名称，可选
}
