package config

type Log struct {
	// debug / info / warn / error
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
	// json（預設）或 console，本機開發用 console 較易讀
	Format string `mapstructure:"FORMAT" json:"format" yaml:"format"`
}
