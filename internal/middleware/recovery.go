package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/fluentd/model"
	"mannamsalon/internal/database/fluentd/repository"
	cErr "mannamsalon/internal/pkg/error"
	res "mannamsalon/internal/pkg/response"
	"mannamsalon/internal/telemetry"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// ErrorHandler 統一輸出 panic 與 c.Error 累積的錯誤
func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := requestStartTime(c)

		// panic recover 必須在 c.Next() 之前註冊
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestTime)
			ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))
			requestID := requestIDFrom(c, span.SpanContext().TraceID().String())

			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)
			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
			)

			appErr := cErr.InternalServer("unexpected panic")
			end(appErr)
			middleware.fail(c, ctx, requestID, appErr, "panic", meta.Message)
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))
		requestID := requestIDFrom(c, span.SpanContext().TraceID().String())

		// 取第一個應用錯誤；沒有就視為 500
		var appErr *cErr.Error
		for _, e := range c.Errors {
			if errors.As(e.Err, &appErr) {
				break
			}
		}
		detail := ""
		if appErr == nil {
			detail = toSafeString(c.Errors.String())
			appErr = cErr.InternalServer("unknown-error")
		} else {
			detail = appErr.ErrorDesc()
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       appErr.ErrorCode(),
			Message:    appErr.Error(),
			Detail:     detail,
			Status:     appErr.HttpCode(),
			DurationMs: float64(duration.Milliseconds()),
		})
		fields := []zap.Field{
			zap.Int("code", appErr.ErrorCode()),
			zap.String("data", detail),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		}
		if appErr.HttpCode() >= http.StatusInternalServerError {
			middleware.logger.Error(appErr.Error(), fields...)
			end(appErr)
		} else {
			middleware.logger.Warn(appErr.Error(), fields...)
			end(nil)
		}
		middleware.fail(c, ctx, requestID, appErr, appErr.Error(), detail)
	}
}

func (middleware *Recovery) fail(c *gin.Context, ctx context.Context, requestID string, appErr *cErr.Error, reason, detail string) {
	if !c.Writer.Written() {
		res.FailByErr(c, requestID, appErr)
	}
	c.Abort()

	role, uid := sessionIdentity(c)
	if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:   requestID,
		ProjectName: middleware.config.App.Name,
		Code:        appErr.ErrorCode(),
		StatusCode:  appErr.HttpCode(),
		Role:        role,
		UID:         uid,
		Error:       detail,
		ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
	}); err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err))
	}

	if middleware.metric.HttpErrorsTotal != nil {
		middleware.metric.HttpErrorsTotal.WithLabelValues(reason).Inc()
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	return toSafeString(string(b))
}
