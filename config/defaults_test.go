package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults_EnvOverrides(t *testing.T) {
	t.Setenv("APP__PORT", "8080")
	v := viper.NewWithOptions(viper.KeyDelimiter("__"))
	v.AutomaticEnv()
	SetDefaults(v)

	var conf Configuration
	require.NoError(t, v.Unmarshal(&conf))
	assert.EqualValues(t, 8080, conf.App.Port)
	assert.Equal(t, "Asia/Seoul", conf.App.Timezone)
	assert.Equal(t, 24, conf.Session.TTLHours)
	assert.EqualValues(t, 120, conf.RateLimit.PerMinute)
	assert.Equal(t, "mannamsalon", conf.MongoDB.Database)
	assert.Equal(t, "0 0 4 * * *", conf.Cron.OrphanCleanup)
	assert.Equal(t, 40, conf.Payroll.WeeklyHours)
	assert.NoError(t, conf.Cron.Validate())
}

func TestCronValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"disabled", "", false},
		{"daily at four", "0 0 4 * * *", false},
		{"descriptor", "@daily", false},
		{"five fields", "0 4 * * *", true},
		{"garbage", "every day", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Cron{OrphanCleanup: tt.spec}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
