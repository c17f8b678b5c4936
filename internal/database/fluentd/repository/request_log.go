package repository

import (
	"context"
	"encoding/json"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/client"
	"mannamsalon/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Audit Log 到 Fluentd
type LogRepository struct {
	fluentdClient *client.FluentdClient
	projectName   string
	version       string
}

func NewLogRepository(config *config.Configuration, client *client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, projectName: config.App.Name, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogAudit(ctx context.Context, audit model.AuditLog) error {
	if audit.LoggedAt == "" {
		audit.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if audit.Version == "" {
		audit.Version = repository.version
	}
	if audit.ProjectName == "" {
		audit.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdAudit, audit)
}

func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}
