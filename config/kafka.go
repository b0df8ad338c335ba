package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	ImageCreated   string `mapstructure:"imageCreated" yaml:"imageCreated"`     //  图片创建事件主题
	ContentDeleted string `mapstructure:"contentDeleted" yaml:"contentDeleted"` //  内容删除事件主题
}
