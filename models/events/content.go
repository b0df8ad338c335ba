package events

import "time"

// ImageEventData 是图片创建事件中携带的核心数据
type ImageEventData struct {
	ImageID       uint64  `json:"image_id"`                 // 图片ID
	FileURL       string  `json:"file_url"`                 // 公开访问 URL
	FileSize      int64   `json:"file_size"`                // 文件大小 (字节)
	OrgID         *uint64 `json:"org_id,omitempty"`         // 挂载的组织ID，未挂载时为空
	SequenceIndex *int    `json:"sequence_index,omitempty"` // 组织序列中的位置，未挂载时为空
}

// ImageCreatedEvent 图片创建事件
// - 下游（如媒体审核、CDN 预热）按需消费
type ImageCreatedEvent struct {
	EventID   string         `json:"event_id"`  // 事件唯一ID
	Timestamp time.Time      `json:"timestamp"` // 事件产生时间
	Image     ImageEventData `json:"image"`     // 图片数据
}

// ContentDeletedEvent 内容删除事件
// - Kind 标识被删除的记录类型 (discussion/faq/image/location/resource/topic)
type ContentDeletedEvent struct {
	EventID   string    `json:"event_id"`  // 事件唯一ID
	Timestamp time.Time `json:"timestamp"` // 事件产生时间
	Kind      string    `json:"kind"`      // 记录类型
	RecordID  uint64    `json:"record_id"` // 被删除记录的ID
}
