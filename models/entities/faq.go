package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Faq 常见问题实体
// - 使用场景: 组织页面上的常见问题条目，透传类记录
// - 表名: faqs
type Faq struct {
	entities.BaseModel

	// 问题文本，必填
	Question string `gorm:"type:varchar(500);not null"`

	// 答案文本，必填
	Answer string `gorm:"type:text;not null"`

	// 展示顺序，0 起始
	// - GORM 标签: default:0；index 便于按顺序取列表
	Order int `gorm:"default:0;index"`
}
