package middleware

import (
	"encoding/json"
	"fmt"
	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/fluentd/model"
	"mannamsalon/internal/database/fluentd/repository"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/telemetry"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const previewLimit = 2000

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

func skipResponseWrap(path string) bool {
	for _, prefix := range []string{"/swagger", "/metrics", "/version", "/health-check", "/debug/pprof"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// FormatHandler 把 handler 透過 c.Set("data") 留下的結果包成統一格式
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipResponseWrap(c.Request.URL.Path) {
			c.Next()
			return
		}
		requestTime := requestStartTime(c)

		c.Next()

		duration := time.Since(requestTime)

		// 錯誤交由 Recovery
		if len(c.Errors) > 0 {
			return
		}
		// cleanup / rpc 等端點已自行輸出
		if response.IsRaw(c) || c.Writer.Written() {
			return
		}

		statusCode := http.StatusOK
		if v, ok := c.Get("status"); ok {
			if s, ok := v.(int); ok && s > 0 {
				statusCode = s
			}
		}
		if _, hasData := c.Get("data"); !hasData && c.Writer.Status() >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(c.Writer.Status(), "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanResponseMiddleware))
		defer end(nil)

		data, _ := c.Get("data")
		if data == nil {
			data = map[string]any{}
		}
		message := "Request Success"
		if s, ok := c.Get("message"); ok {
			if m, ok := s.(string); ok && m != "" {
				message = m
			}
		}
		requestID := requestIDFrom(c, span.SpanContext().TraceID().String())
		preview := safePreviewJSON(data, previewLimit)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			DurationMs: float64(duration.Milliseconds()),
			Data:       preview,
		})
		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		)
		role, uid := sessionIdentity(c)
		if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:   requestID,
			ProjectName: middleware.config.App.Name,
			StatusCode:  statusCode,
			Role:        role,
			UID:         uid,
			DurationMs:  float64(duration.Milliseconds()),
			Body:        preview,
			ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		}); err != nil {
			middleware.logger.Warn("fluentd response log failed", zap.Error(err))
		}

		c.JSON(statusCode, response.Response{
			RequestID:   requestID,
			Code:        0,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
	}
}

func requestStartTime(c *gin.Context) time.Time {
	if v, ok := c.Get("requestDuration"); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	now := time.Now()
	c.Set("requestDuration", now)
	return now
}

// requestIDFrom 優先使用 Logger 寫入的 requestId
func requestIDFrom(c *gin.Context, fallback string) string {
	if id := c.GetString("requestId"); id != "" {
		return id
	}
	return fallback
}

// safePreviewJSON 會把資料序列化為 JSON 字串（UTF-8），並限制長度。
func safePreviewJSON(data any, max int) string {
	var out string
	if s, ok := data.(string); ok {
		out = s
	} else {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("[marshal error: %v]", err)
		}
		out = string(b)
	}
	return truncateRunes(out, max)
}

// truncateRunes 以 rune 為單位截斷，避免切在多位元組字元中間
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// sessionIdentity 回應紀錄用；未登入時兩者皆為空
func sessionIdentity(c *gin.Context) (string, string) {
	if session := CurrentSession(c); session != nil {
		return string(session.Role), session.UID
	}
	return "", ""
}
