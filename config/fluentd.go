package config

// Fluentd 稽核與請求紀錄的轉送設定；TIMEOUT 單位為毫秒
type Fluentd struct {
	Enabled     bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host        string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port        int    `mapstructure:"PORT" json:"port" yaml:"port"`
	TagPrefix   string `mapstructure:"TAG_PREFIX" json:"tagPrefix" yaml:"tagPrefix"`
	Timeout     int64  `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
	MaxRetry    int    `mapstructure:"MAX_RETRY" json:"maxRetry" yaml:"maxRetry"`
	BufferLimit int    `mapstructure:"BUFFER_LIMIT" json:"bufferLimit" yaml:"bufferLimit"`
}
