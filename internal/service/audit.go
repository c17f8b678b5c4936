package service

import (
	"context"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/fluentd/model"
	"mannamsalon/internal/telemetry"

	"go.uber.org/zap"
)

// AuditService 管理動作紀錄；送出失敗只記 log，不影響主流程
type AuditService struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	sink   AuditLogger
}

func NewAuditService(logger *zap.Logger, trace *telemetry.Trace, sink AuditLogger) *AuditService {
	return &AuditService{logger: logger, trace: trace, sink: sink}
}

func (s *AuditService) Log(ctx context.Context, session *core.Session, action string, details map[string]any) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	audit := model.AuditLog{Action: action, Details: details}
	if session != nil {
		audit.Actor = session.Name
		if session.IsManager() {
			audit.Actor = "manager"
		}
		audit.Role = string(session.Role)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceAuditLogMeta{
		Action: audit.Action,
		Actor:  audit.Actor,
		Role:   audit.Role,
	})
	s.logger.Info("[Audit] "+action, zap.String("actor", audit.Actor), zap.Any("details", details))
	if err := s.sink.LogAudit(ctx, audit); err != nil {
		s.logger.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}
}
