package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Resource 资源实体
// - 使用场景: 对外分享的学习/行动资源链接，透传类记录
// - 表名: resources
type Resource struct {
	entities.BaseModel

	// 资源名称，必填
	Name string `gorm:"type:varchar(255);not null"`

	// 资源描述
	Description string `gorm:"type:text"`

	// 资源链接，必填
	URL string `gorm:"type:varchar(1023);not null"`

	// 分类，可选，用于列表筛选
	Category string `gorm:"type:varchar(100);index"`

	// 创建者ID，UUID格式
	CreatedBy string `gorm:"type:char(36);not null;index"`
}
