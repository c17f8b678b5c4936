package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/fluentd/model"
	"mannamsalon/internal/database/fluentd/repository"
	"mannamsalon/internal/telemetry"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

// 不得寫入 log / trace / fluentd 的欄位（小寫比對）
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"signature":     {},
	"imagedata":     {},
	"accountnumber": {},
	"authorization": {},
	"cookie":        {},
}

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求（二進位 body 不讀；JSON body 先遮蔽敏感欄位）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipResponseWrap(c.Request.URL.Path) {
			c.Next()
			return
		}
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			if id, err := uuid.NewV7(); err == nil {
				requestID = id.String()
			} else {
				requestID = uuid.NewString()
			}
		}
		c.Set("requestId", requestID)
		c.Header("X-Request-ID", requestID)

		ctx, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanLoggerMiddleware))
		requestTime := requestStartTime(c)

		mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
		var body string
		switch {
		case isBinaryContent(mediaType):
			body = fmt.Sprintf("(binary %s, %d bytes)", mediaType, c.Request.ContentLength)
		case c.Request.Body != nil && c.Request.ContentLength != 0:
			data, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))
			if strings.HasPrefix(mediaType, "application/json") {
				data = redactJSON(data)
			}
			body = toSafePreview(data, previewLimit)
		}

		headers := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			lk := strings.ToLower(k)
			if _, hide := sensitiveKeys[lk]; hide {
				headers[lk] = redacted
				continue
			}
			headers[lk] = strings.Join(v, ",")
		}
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		m.trace.ApplyTraceAttributes(span, core.LoggerRequestMeta{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			FullPath:   c.FullPath(),
			Query:      c.Request.URL.RawQuery,
			Body:       body,
			Scheme:     c.Request.URL.Scheme,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headers,
			Params:     params,
		})

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("requestId", requestID),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if len(params) > 0 {
			fields = append(fields, zap.Any("params", params))
		}
		if body != "" {
			fields = append(fields, zap.String("body", body))
		}
		m.logger.Info("[Request]", fields...)

		if err := m.fluentdRepository.LogRequest(ctx, model.RequestLog{
			RequestID:   requestID,
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Route:       c.FullPath(),
			Query:       c.Request.URL.RawQuery,
			ProjectName: m.config.App.Name,
			RequestTS:   requestTime.UTC().Format("2006-01-02 15:04:05.999999 UTC"),
			Body:        body,
			IPHash:      hashIP(c.ClientIP()),
			UserAgent:   c.Request.UserAgent(),
		}); err != nil {
			m.logger.Warn("fluentd request log failed", zap.Error(err))
		}
		end(nil)
		c.Next()
	}
}

// redactJSON 遞迴遮蔽敏感欄位；非 JSON 原樣回傳
func redactJSON(data []byte) []byte {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return data
	}
	out, err := json.Marshal(redactValue(v))
	if err != nil {
		return data
	}
	return out
}

func redactValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if _, hide := sensitiveKeys[strings.ToLower(k)]; hide {
				t[k] = redacted
				continue
			}
			t[k] = redactValue(val)
		}
		return t
	case []any:
		for i := range t {
			t[i] = redactValue(t[i])
		}
		return t
	default:
		return v
	}
}

func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

// 僅對文字內容做安全預覽：UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func toSafePreview(b []byte, max int) string {
	if len(b) == 0 {
		return ""
	}
	if !utf8.Valid(b) {
		if len(b) > max {
			b = b[:max]
		}
		return "b64:" + base64.StdEncoding.EncodeToString(b)
	}
	if len(b) <= max {
		return string(b)
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	return string(b[:cut]) + "…"
}

func isBinaryContent(mediaType string) bool {
	for _, prefix := range []string{"multipart/", "image/", "audio/", "video/"} {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}
	return mediaType == "application/octet-stream"
}
