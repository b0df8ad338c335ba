package config

// COSConfig 包含腾讯云 COS 对象存储的配置，用于内容图片的二进制存储
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"secret_id" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"secret_key" yaml:"secret_key"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 是对象公开访问的基础 URL (例如 CDN 或自定义域名)。
	// 留空时使用存储桶的标准访问域名。
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
}
