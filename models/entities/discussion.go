package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Discussion 讨论实体
// - 使用场景: 组织或活动下的讨论串，所有字段对外直接读写（透传类记录）
// - 表名: discussions (GORM 默认使用结构体名复数形式)
type Discussion struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	// - GORM 标签: type:varchar(255) 指定数据库类型，not null 表示非空
	Title string `gorm:"type:varchar(255);not null"`

	// 分类，可选，用于前端按类别筛选讨论
	Category string `gorm:"type:varchar(100)"`

	// 创建者ID，关联用户表，外键
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	CreatedBy string `gorm:"type:char(36);not null;index"`
}

// DiscussionEntry 讨论回复实体
// - 使用场景: 讨论串下的单条回复，概念上是 Discussion 的子记录（桥接/关联实体）
// - 表名: discussion_entries
// - 关系: 与 Discussion 为"多对一"，通过 DiscussionID 外键关联
type DiscussionEntry struct {
	entities.BaseModel

	// 关联的讨论ID (外键)
	// - GORM 标签: not null 确保回复必须挂在某条讨论下；index 优化按讨论查询回复的场景
	DiscussionID uint64 `gorm:"not null;index"`

	// 回复正文
	Text string `gorm:"type:text;not null"`

	// 回复者ID，UUID格式
	CreatedBy string `gorm:"type:char(36);not null"`
}
