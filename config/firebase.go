package config

type Firebase struct {
	Enabled         bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	ProjectID       string `mapstructure:"PROJECT_ID" json:"project_id" yaml:"project_id"`
	CredentialsFile string `mapstructure:"CREDENTIALS_FILE" json:"credentials_file" yaml:"credentials_file"`
}
