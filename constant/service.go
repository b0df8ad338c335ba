package constant

// 服务标识常量，用于日志、追踪和事件来源标记
const (
	ServiceName    = "content_service"
	ServiceVersion = "1.0.0"
)

// COSObjectKeyPrefixContentImages 是内容图片在 COS 中的对象键前缀。
// 完整对象键示例: content/images/20250101/550e8400-e29b-41d4-a716-446655440000.jpg
const COSObjectKeyPrefixContentImages = "content/images/"
