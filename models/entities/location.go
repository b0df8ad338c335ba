package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Location 地点实体
// - 使用场景: 组织/活动/资源引用的地理位置，透传类记录
// - 表名: locations
type Location struct {
	entities.BaseModel

	// 纬度，十进制字符串形式存储，避免浮点精度问题
	Lat string `gorm:"type:varchar(24);not null"`

	// 经度
	Lon string `gorm:"type:varchar(24);not null"`

	// 外接矩形 (bounding box)，JSON 数组字符串，可选
	Bbox string `gorm:"type:varchar(255)"`

	// 人类可读的显示名称
	DisplayName string `gorm:"type:varchar(255);not null"`
}
