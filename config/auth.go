package config

type Manager struct {
	// bcrypt 雜湊後的管理者密碼
	PasswordHash string `mapstructure:"PASSWORD_HASH" json:"password_hash" yaml:"password_hash"`
}

type Session struct {
	JWTSecret string `mapstructure:"JWT_SECRET" json:"jwt_secret" yaml:"jwt_secret"`
	// 小時，預設 24
	TTLHours int `mapstructure:"TTL_HOURS" json:"ttl_hours" yaml:"ttl_hours"`
}

type RateLimit struct {
	Enabled bool `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	// 每個 IP 每分鐘可呼叫次數
	PerMinute int64 `mapstructure:"PER_MINUTE" json:"per_minute" yaml:"per_minute"`
}
