package config

// Redis 存放登入 session 與限流計數
type Redis struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	PoolSize int    `mapstructure:"POOL_SIZE" json:"pool_size" yaml:"pool_size"`
	// key 前綴，多個環境共用同一台 Redis 時區隔
	KeyPrefix string `mapstructure:"KEY_PREFIX" json:"key_prefix" yaml:"key_prefix"`
}
