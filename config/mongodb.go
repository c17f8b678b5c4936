package config

type MongoDB struct {
	URI      string `mapstructure:"URI" json:"uri" yaml:"uri"`
	Database string `mapstructure:"DATABASE" json:"database" yaml:"database"`
	Options  string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	// 需 replica set 才能使用 change stream；單機部署時關閉，改由服務層同步刪除身份帳號
	WatchUsers bool `mapstructure:"WATCH_USERS" json:"watch_users" yaml:"watch_users"`
}
