package config

// UploadConfig 包含上传相关的限制配置
type UploadConfig struct {
	// ImageMaxFileSize 是单张图片允许的最大字节数。
	// 网关/反向代理层的请求体限制在实践中并不总是生效，
	// 服务端在校验阶段会再次按该值检查文件大小。
	ImageMaxFileSize int64 `mapstructure:"imageMaxFileSize" json:"imageMaxFileSize" yaml:"imageMaxFileSize"`
}
