package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
	Firebase  Firebase        `mapstructure:"FIREBASE" json:"firebase" yaml:"firebase"`
	Manager   Manager         `mapstructure:"MANAGER" json:"manager" yaml:"manager"`
	Session   Session         `mapstructure:"SESSION" json:"session" yaml:"session"`
	Payroll   Payroll         `mapstructure:"PAYROLL" json:"payroll" yaml:"payroll"`
	Cron      Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`
	RateLimit RateLimit       `mapstructure:"RATELIMIT" json:"ratelimit" yaml:"ratelimit"`
}
