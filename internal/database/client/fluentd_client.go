package client

import (
	"context"
	"mannamsalon/config"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// FluentdClient 轉送紀錄到 Fluentd；未啟用時 Post 不做任何事
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
	logger    *zap.Logger
}

func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (*FluentdClient, func(), error) {
	prefix := "mannamsalon"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	fluentdClient := &FluentdClient{tagPrefix: prefix, logger: logger}
	if !config.Fluentd.Enabled {
		logger.Info("Fluentd disabled, logs stay local")
		return fluentdClient, func() {}, nil
	}

	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}
	// tag 前綴由 Tag() 負責，不交給 fluent 再加一次
	f, err := fluent.New(fluent.Config{
		FluentHost:  config.Fluentd.Host,
		FluentPort:  config.Fluentd.Port,
		Timeout:     timeout,
		MaxRetry:    config.Fluentd.MaxRetry,
		BufferLimit: config.Fluentd.BufferLimit,
		Async:       true,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Fluentd")
	fluentdClient.client = f

	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := fluentdClient.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return fluentdClient, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Enabled 是否實際送出
func (c *FluentdClient) Enabled() bool {
	return c != nil && c.client != nil
}

// Tag builds a tag using the configured TagPrefix and provided suffix.
// e.g. suffix="audit_log" => "mannamsalon.audit_log"
func (c *FluentdClient) Tag(suffix string) string {
	if c.tagPrefix == "" {
		return suffix
	}
	return c.tagPrefix + "." + suffix
}

// Post sends a record to Fluentd with the given tag.
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Post(tag, message)
}
