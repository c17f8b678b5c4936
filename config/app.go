package config

type App struct {
	// 當前開發環境
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// 服務端口
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// 服務名稱
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// 服務版本
	Version string `mapstructure:"VERSION" json:"version" yaml:"version"`
	// 出勤日期與打卡時間使用的時區，預設 Asia/Seoul
	Timezone string `mapstructure:"TIMEZONE" json:"timezone" yaml:"timezone"`
	// 合約簽署頁面網址，產生連結時附加 ?id=<contractId>
	SignBaseURL    string `mapstructure:"SIGN_BASE_URL" json:"sign_base_url" yaml:"sign_base_url"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
}
