package config

import "github.com/spf13/viper"

// SetDefaults 未在 .env / yaml / 環境變數中設定時的值；key 以 "__" 分層
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP__ENV", "development")
	v.SetDefault("APP__PORT", 3000)
	v.SetDefault("APP__NAME", "mannamsalon")
	v.SetDefault("APP__TIMEZONE", "Asia/Seoul")
	v.SetDefault("LOG__LEVEL", "info")
	v.SetDefault("LOG__FORMAT", "json")
	v.SetDefault("MONGODB__DATABASE", "mannamsalon")
	v.SetDefault("REDIS__HOST", "localhost")
	v.SetDefault("REDIS__PORT", 6379)
	v.SetDefault("SESSION__TTL_HOURS", 24)
	v.SetDefault("PAYROLL__MIN_WEEKLY_HOURS", 15)
	v.SetDefault("PAYROLL__WEEKLY_HOURS", 40)
	v.SetDefault("RATELIMIT__PER_MINUTE", 120)
	v.SetDefault("CRON__ORPHAN_CLEANUP", "0 0 4 * * *")
}
