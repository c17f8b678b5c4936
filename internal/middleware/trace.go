package middleware

import (
	"net"
	"strconv"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type TraceEntry struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	conf   *config.Configuration
}

func NewTraceEntry(trace *telemetry.Trace, metric *telemetry.Metric, conf *config.Configuration) *TraceEntry {
	return &TraceEntry{trace: trace, metric: metric, conf: conf}
}

// Handler 開 server span 並記錄 HTTP 指標，必須是第一個 middleware
func (m *TraceEntry) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipResponseWrap(c.Request.URL.Path) {
			c.Next()
			return
		}
		start := time.Now()
		c.Set("requestDuration", start)

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := m.trace.StartSpanForLayer(ctx,
			core.TraceSpanName(c.Request.Method+" "+c.Request.URL.Path),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		c.Request = c.Request.WithContext(ctx)
		c.Set(core.ContextTraceKey, ctx)

		peerAddr, peerPort := c.ClientIP(), 0
		if host, port, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
			peerAddr = host
			peerPort, _ = strconv.Atoi(port)
		}
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		meta := core.TraceHttpServerMeta{
			ClientAddr:        c.ClientIP(),
			HttpRequestMethod: c.Request.Method,
			HttpRoute:         c.FullPath(),
			UrlPath:           c.Request.URL.Path,
			UrlScheme:         scheme,
			UserAgent:         c.Request.UserAgent(),
			ServerAddress:     m.conf.App.Name,
			NetworkPeerAddr:   peerAddr,
			NetworkPeerPort:   peerPort,
			NetworkProtoVer:   c.Request.Proto,
			SpanKind:          "server",
			SpanTraceID:       span.SpanContext().TraceID().String(),
		}

		c.Next()

		statusCode := c.Writer.Status()
		meta.HttpStatusCode = statusCode
		m.trace.ApplyTraceAttributes(span, &meta)

		var lastErr error
		if statusCode >= 500 && len(c.Errors) > 0 {
			lastErr = c.Errors.Last().Err
		}
		m.trace.EndSpan(span, lastErr)

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		if m.metric.HttpRequestsTotal != nil {
			m.metric.HttpRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
		}
		if m.metric.HttpRequestDuration != nil {
			m.metric.HttpRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}
	}
}
