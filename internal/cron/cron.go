package cron

import (
	"context"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewOrphanCleanupJob)

type Cron struct {
	logger           *zap.Logger
	conf             *config.Configuration
	server           *cron.Cron
	orphanCleanupJob *OrphanCleanupJob
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, orphanCleanupJob *OrphanCleanupJob) *Cron {
	server := cron.New(
		cron.WithParser(config.CronParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Cron{
		logger:           logger,
		conf:             conf,
		server:           server,
		orphanCleanupJob: orphanCleanupJob,
	}
}

func (c *Cron) Run() error {
	if err := c.conf.Cron.Validate(); err != nil {
		return err
	}
	if spec := c.conf.Cron.OrphanCleanup; spec != "" {
		if _, err := c.server.AddFunc(spec, c.orphanCleanupJob.Run); err != nil {
			return err
		}
		c.logger.Info("cron job registered", zap.String("job", "orphan_cleanup"), zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	// 等待執行中的 job 結束，或 ctx 逾時
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// OrphanCleanupJob 定期清除 users 已不存在的登入帳號
type OrphanCleanupJob struct {
	logger          *zap.Logger
	identityService *service.IdentityService
	timeout         time.Duration
}

func NewOrphanCleanupJob(logger *zap.Logger, identityService *service.IdentityService) *OrphanCleanupJob {
	return &OrphanCleanupJob{
		logger:          logger,
		identityService: identityService,
		timeout:         5 * time.Minute,
	}
}

func (j *OrphanCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	// 結果由 service 記錄
	if _, err := j.identityService.CleanupOrphans(ctx, "cron"); err != nil {
		j.logger.Error("orphan cleanup failed", zap.Error(err))
	}
}
