package telemetry

import (
	"context"
	"fmt"
	"mannamsalon/config"
	"mannamsalon/internal/core"
	"reflect"
	"runtime"
	"strings"
	"time"

	gcppropagator "github.com/GoogleCloudPlatform/opentelemetry-operations-go/propagator"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type Trace struct {
	TracerProvider *sdktrace.TracerProvider
	ServiceName    string
}

// NewTrace 未啟用時回傳 noop tracer；cleanup 會 flush 尚未送出的 span
func NewTrace(conf *config.Configuration, logger *zap.Logger) (*Trace, func(), error) {
	if conf == nil || !conf.Telemetry.Trace.Enabled {
		return &Trace{TracerProvider: nil, ServiceName: ""}, func() {}, nil
	}
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpointURL(conf.Telemetry.Trace.EndpointUrl),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
			Enabled:         true,             // 是否啟用重試
			InitialInterval: 5 * time.Second,  // 初次失敗後等待多久
			MaxInterval:     10 * time.Second, // 每次加倍延遲的最大值
			MaxElapsedTime:  60 * time.Second, // 單次請求最大重試時長（超過則丟棄）
		}),
		otlptracehttp.WithTimeout(30*time.Second),
	)
	if err != nil {
		logger.Error("failed to create otlp exporter", zap.Error(err))
		return nil, nil, err
	}

	sampler := sdktrace.AlwaysSample()
	if ratio := conf.Telemetry.Trace.SampleRatio; ratio > 0 && ratio < 1 {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(conf.App.Name),
			semconv.ServiceVersion(conf.App.Version),
		)),
	)

	otel.SetTracerProvider(tp)
	// Firebase Hosting / Cloud Run 前端帶 X-Cloud-Trace-Context，一併接上
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			gcppropagator.CloudTraceOneWayPropagator{},
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown tracer provider", zap.Error(err))
		}
	}
	return &Trace{
		TracerProvider: tp,
		ServiceName:    conf.App.Name,
	}, cleanup, nil
}

func (t *Trace) tracer() trace.Tracer {
	if t == nil || t.TracerProvider == nil {
		return noop.NewTracerProvider().Tracer("noop")
	}
	return t.TracerProvider.Tracer(t.ServiceName)
}

func (t *Trace) StartSpanForLayer(
	ctx context.Context,
	spanName core.TraceSpanName,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	return t.tracer().Start(ctx, string(spanName), opts...)
}

// WithSpan 接受 *gin.Context 或 context.Context，未指定名稱時以呼叫端函式命名
func (t *Trace) WithSpan(parent any, name ...string) (context.Context, trace.Span, func(error)) {
	override := ""
	if len(name) > 0 {
		override = strings.TrimSpace(name[0])
	}

	var (
		ctx  context.Context
		span trace.Span
	)
	switch p := parent.(type) {
	case *gin.Context:
		n := override
		if n == "" {
			n = spanNameFromGin(p)
		}
		ctx, span = t.StartSpanForLayer(t.GetTraceContext(p), core.TraceSpanName(n))
		p.Set(core.ContextTraceKey, ctx)
	case context.Context:
		n := override
		if n == "" {
			n = shortFuncName(callerFuncName(2))
		}
		if n == "" {
			n = "unknown"
		}
		ctx, span = t.StartSpanForLayer(p, core.TraceSpanName(n))
	default:
		if override == "" {
			override = "unknown"
		}
		ctx, span = t.StartSpanForLayer(context.Background(), core.TraceSpanName(override))
	}
	return ctx, span, func(err error) { t.EndSpan(span, err) }
}

func (t *Trace) EndSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetTraceContext 取得 middleware 鏈上最新的 span ctx
func (t *Trace) GetTraceContext(c *gin.Context) context.Context {
	if v, ok := c.Get(core.ContextTraceKey); ok {
		if ctx, ok := v.(context.Context); ok {
			return ctx
		}
	}
	return c.Request.Context()
}

// ApplyTraceAttributes 依 struct 的 `trace:"..."` tag 寫入 span attribute
func (t *Trace) ApplyTraceAttributes(span trace.Span, obj any) {
	if span == nil || obj == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("ApplyTraceAttributes panic: %v", r))
		}
	}()
	span.SetAttributes(collectAttributes(reflect.ValueOf(obj))...)
}

func collectAttributes(val reflect.Value) []attribute.KeyValue {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	typ := val.Type()
	var attrs []attribute.KeyValue
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("trace")
		field := val.Field(i)
		if tag == "" || !field.CanInterface() {
			continue
		}
		switch field.Kind() {
		case reflect.Struct, reflect.Ptr:
			attrs = append(attrs, collectAttributes(field)...)
		case reflect.Map:
			if field.Type().Key().Kind() != reflect.String {
				continue
			}
			iter := field.MapRange()
			for iter.Next() {
				if kv, ok := scalarAttribute(tag+"."+iter.Key().String(), iter.Value()); ok {
					attrs = append(attrs, kv)
				}
			}
		case reflect.Slice, reflect.Array:
			if field.Type().Elem().Kind() != reflect.String {
				continue
			}
			strs := make([]string, field.Len())
			for j := range strs {
				strs[j] = field.Index(j).String()
			}
			attrs = append(attrs, attribute.StringSlice(tag, strs))
		default:
			if kv, ok := scalarAttribute(tag, field); ok {
				attrs = append(attrs, kv)
			}
		}
	}
	return attrs
}

func scalarAttribute(key string, v reflect.Value) (attribute.KeyValue, bool) {
	switch v.Kind() {
	case reflect.String:
		return attribute.String(key, v.String()), true
	case reflect.Bool:
		return attribute.Bool(key, v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return attribute.Int64(key, v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return attribute.Int64(key, int64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		return attribute.Float64(key, v.Float()), true
	}
	return attribute.KeyValue{}, false
}

// shortFuncName 把 "mannamsalon/internal/service.(*AttendanceService).ClockIn-fm" 轉成 "AttendanceService.ClockIn"
func shortFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndex(full, ".func"); i >= 0 {
		full = full[:i]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	full = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(full)
	if i := strings.Index(full, "["); i >= 0 {
		if j := strings.Index(full, "]"); j > i {
			full = full[:i] + full[j+1:]
		}
	}
	return full
}

func spanNameFromGin(c *gin.Context) string {
	if hn := c.HandlerName(); hn != "" {
		return shortFuncName(hn)
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return c.Request.Method + " " + route
}

func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}
