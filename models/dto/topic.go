package dto

import "time"

// CreateTopicRequest 定义了创建主题的请求数据结构
// - Active 与 DeprecationDate 的交叉校验在服务层完成（持久化前原子校验）
type CreateTopicRequest struct {
	Name            string     `json:"name" form:"name" binding:"required,max=255"`   // 主题名称，必填，最大255字符
	Description     string     `json:"description" form:"description" binding:"omitempty"` // 主题描述，可选
	Active          bool       `json:"active" form:"active"`                          // 是否激活
	DeprecationDate *time.Time `json:"deprecation_date" form:"deprecation_date"`      // 弃用时间 (RFC3339)，可选
}

// UpdateTopicRequest 定义了更新主题的请求数据结构
// - 校验针对合并后的完整候选属性集执行，而非仅针对变更字段
type UpdateTopicRequest struct {
	Name            *string    `json:"name" binding:"omitempty,max=255"` // 主题名称，可选
	Description     *string    `json:"description" binding:"omitempty"`  // 主题描述，可选
	Active          *bool      `json:"active"`                           // 是否激活，可选
	DeprecationDate *time.Time `json:"deprecation_date"`                 // 弃用时间，可选
	// ClearDeprecationDate 为 true 时将弃用时间置空。
	// 区别于 DeprecationDate 为 nil (表示不修改该字段)。
	ClearDeprecationDate bool `json:"clear_deprecation_date"`
}
