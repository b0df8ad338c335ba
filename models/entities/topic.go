package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Topic 主题实体
// - 使用场景: 内容标签体系中的主题（如 "Environment"），可被弃用
// - 表名: topics
// - 业务不变量: active=true 时 DeprecationDate 必须为空；active=false 时必须非空。
//   该不变量由服务层在持久化前校验，数据库不做约束。
type Topic struct {
	entities.BaseModel

	// 主题名称，必填且唯一
	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 主题描述
	Description string `gorm:"type:text"`

	// 是否激活
	Active bool `gorm:"not null;default:true;index"`

	// 弃用时间，可为空；与 CreatedAt 的先后关系由 utils.ValidateCreationAndDeprecationDates 校验
	DeprecationDate *time.Time `gorm:"type:datetime(3)"`
}
