package config

// RedisConfig 包含 Redis 连接相关的配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // Redis 地址，格式 host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 密码，未启用认证时留空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 使用的逻辑数据库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 表示使用客户端默认值
}
