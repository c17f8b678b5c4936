package service

import (
	"context"
	"errors"

	"mannamsalon/internal/core"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.uber.org/zap"
)

// IdentityService 讓身份服務帳號與 users 集合保持一致
type IdentityService struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	users    UserStore
	identity IdentityProvider
	audit    *AuditService
}

func NewIdentityService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	users UserStore,
	identity IdentityProvider,
	audit *AuditService,
) *IdentityService {
	return &IdentityService{
		logger:   logger,
		trace:    trace,
		metric:   metric,
		users:    users,
		identity: identity,
		audit:    audit,
	}
}

// OnUserDeleted users 文件刪除後移除對應帳號；帳號本來就不存在視為成功
func (s *IdentityService) OnUserDeleted(ctx context.Context, uid string) error {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanUserDeleteTrigger))
	s.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{UID: uid})

	err := s.identity.DeleteUser(ctx, uid)
	switch {
	case err == nil:
		s.logger.Info("identity account deleted", zap.String("uid", uid))
		s.count("trigger", "deleted")
		end(nil)
		return nil
	case errors.Is(err, core.ErrIdentityUserNotFound):
		s.logger.Info("identity account already absent", zap.String("uid", uid))
		s.count("trigger", "not_found")
		end(nil)
		return nil
	default:
		s.logger.Error("identity account delete failed", zap.String("uid", uid), zap.Error(err))
		s.count("trigger", "failed")
		appErr := cErr.IdentityProviderError(err.Error())
		end(appErr)
		return appErr
	}
}

// CleanupOrphans 刪除 users 中已不存在的身份帳號；單筆失敗不影響其他筆
func (s *IdentityService) CleanupOrphans(ctx context.Context, source string) (*dto.CleanupResultDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanOrphanCleanup))

	uids, err := s.users.ListUIDs(ctx)
	if err != nil {
		appErr := cErr.DatabaseError("list users: " + err.Error())
		end(appErr)
		return nil, appErr
	}
	accounts, err := s.identity.ListUsers(ctx)
	if err != nil {
		appErr := cErr.IdentityProviderError("list identity accounts: " + err.Error())
		end(appErr)
		return nil, appErr
	}

	valid := make(map[string]struct{}, len(uids))
	for _, uid := range uids {
		valid[uid] = struct{}{}
	}
	result := &dto.CleanupResultDto{
		Success:        true,
		ValidUsers:     len(uids),
		TotalAuthUsers: len(accounts),
		Results:        []dto.CleanupItemDto{},
	}
	for _, account := range accounts {
		if _, ok := valid[account.UID]; ok {
			continue
		}
		result.OrphanedUsers++
		item := dto.CleanupItemDto{UID: account.UID, Email: account.Email, Status: dto.CleanupDeleted}
		if err := s.identity.DeleteUser(ctx, account.UID); err != nil && !errors.Is(err, core.ErrIdentityUserNotFound) {
			item.Status = dto.CleanupFailed
			item.Error = err.Error()
			result.FailedCount++
			s.count(source, "failed")
			s.logger.Warn("orphan delete failed", zap.String("uid", account.UID), zap.Error(err))
		} else {
			result.DeletedCount++
			s.count(source, "deleted")
		}
		result.Results = append(result.Results, item)
	}
	if result.OrphanedUsers == 0 {
		result.Message = "no orphaned accounts"
	}

	s.trace.ApplyTraceAttributes(span, core.TraceCleanupMeta{
		Source:         source,
		ValidUsers:     result.ValidUsers,
		TotalAuthUsers: result.TotalAuthUsers,
		Orphaned:       result.OrphanedUsers,
		Deleted:        result.DeletedCount,
		Failed:         result.FailedCount,
	})
	s.logger.Info("orphan cleanup finished",
		zap.String("source", source),
		zap.Int("validUsers", result.ValidUsers),
		zap.Int("totalAuthUsers", result.TotalAuthUsers),
		zap.Int("orphaned", result.OrphanedUsers),
		zap.Int("deleted", result.DeletedCount),
		zap.Int("failed", result.FailedCount),
	)
	if result.OrphanedUsers > 0 {
		s.audit.Log(ctx, nil, "cleanupOrphanedAuth", map[string]any{
			"source":  source,
			"deleted": result.DeletedCount,
			"failed":  result.FailedCount,
		})
	}
	end(nil)
	return result, nil
}

func (s *IdentityService) count(reason, status string) {
	if s.metric.AuthCleanupTotal != nil {
		s.metric.AuthCleanupTotal.WithLabelValues(reason, status).Inc()
	}
}
