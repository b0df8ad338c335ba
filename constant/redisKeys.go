package constant

import "time"

// Redis Key 相关常量 (导出)
const (
	// TopicListCacheKey 是激活主题列表缓存的 Key 名称。
	// 存储 content_service 当前所有 active=true 的主题列表。
	// Redis 类型: String (JSON 序列化后的 []*vo.TopicResponse)
	// 示例值: "[{\"id\":1,\"name\":\"Environment\",\"active\":true}, ...]"
	TopicListCacheKey = "content:topics:active"

	// TopicListCacheTTL 是主题列表缓存的过期时间。
	// 即使写路径的失效逻辑出现遗漏，缓存也会在该时间后自然过期回源。
	TopicListCacheTTL = 10 * time.Minute

	// TopicCacheRefreshCronSpec 是主题缓存定时重建任务的 cron 表达式 (分钟级)。
	TopicCacheRefreshCronSpec = "*/5 * * * *"
)
