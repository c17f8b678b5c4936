package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

type Payroll struct {
	// 週休津貼（주휴수당）適用的每週最低工時；目前僅作為資訊回傳，不影響計算
	MinWeeklyHours int `mapstructure:"MIN_WEEKLY_HOURS" json:"min_weekly_hours" yaml:"min_weekly_hours"`
	// 週休津貼換算基準的每週工時，隨薪資明細回傳
	WeeklyHours int `mapstructure:"WEEKLY_HOURS" json:"weekly_hours" yaml:"weekly_hours"`
}

// CronParser 與排程器使用相同格式：秒 分 時 日 月 週，亦接受 @daily 等描述
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

type Cron struct {
	// 含秒數的排程，空字串表示不註冊
	OrphanCleanup string `mapstructure:"ORPHAN_CLEANUP" json:"orphan_cleanup" yaml:"orphan_cleanup"`
}

// Validate 檢查排程格式，啟動時就擋下錯誤設定
func (c Cron) Validate() error {
	if c.OrphanCleanup == "" {
		return nil
	}
	if _, err := CronParser.Parse(c.OrphanCleanup); err != nil {
		return fmt.Errorf("CRON__ORPHAN_CLEANUP %q: %w", c.OrphanCleanup, err)
	}
	return nil
}
