package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanHttpRequest          TraceSpanName = "http_request"
	SpanLoggerMiddleware     TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware   TraceSpanName = "recovery_middleware"
	SpanResponseMiddleware   TraceSpanName = "response_middleware"
	SpanSessionMiddleware    TraceSpanName = "session_middleware"
	SpanRateLimitMiddleware  TraceSpanName = "ratelimit_middleware"
	SpanDecompressMiddleware TraceSpanName = "decompress_middleware"
	SpanUserDeleteTrigger    TraceSpanName = "users_delete_trigger"
	SpanOrphanCleanup        TraceSpanName = "orphan_auth_cleanup"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricClockEventsTotal    MetricName = "clock_events_total"
	MetricPayrollRunsTotal    MetricName = "payroll_runs_total"
	MetricPayrollNetAmount    MetricName = "payroll_net_amount_won"
	MetricContractSignedTotal MetricName = "contract_signed_total"
	MetricAuthCleanupTotal    MetricName = "auth_cleanup_total"
	MetricRateLimitTotal      MetricName = "rate_limited_total"
	MetricRPCCallsTotal       MetricName = "rpc_calls_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelEvent    MetricLabelName = "event"
	MetricLabelStore    MetricLabelName = "store"
	MetricLabelAction   MetricLabelName = "action"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceSessionMeta struct {
	SessionID string  `trace:"session.id,omitempty"`
	Role      string  `trace:"session.role,omitempty"`
	UID       string  `trace:"session.uid,omitempty"`
	Store     string  `trace:"session.store,omitempty"`
	Error     *string `trace:"error,omitempty"`
}

// 供 Redis 限流使用
type TraceRateLimitMeta struct {
	ClientIP  string `trace:"rl.client_ip"`
	Limit     int64  `trace:"rl.limit_count"`
	Count     int64  `trace:"rl.count"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Blocked   bool   `trace:"rl.blocked"`
	WindowSec int64  `trace:"rl.window_sec"`
}

type TraceAttendanceMeta struct {
	Op     string `trace:"attendance.op"`
	UID    string `trace:"attendance.uid"`
	Date   string `trace:"attendance.date"`
	Time   string `trace:"attendance.time,omitempty"`
	Reject string `trace:"attendance.reject,omitempty"`
}

type TracePayrollMeta struct {
	Year       int   `trace:"payroll.year"`
	Month      int   `trace:"payroll.month"`
	Employees  int   `trace:"payroll.employees"`
	Records    int   `trace:"payroll.records"`
	TotalHours int64 `trace:"payroll.total_hours,omitempty"`
	NetTotal   int64 `trace:"payroll.net_total,omitempty"`
	Failed     int   `trace:"payroll.failed,omitempty"`
}

type TraceCleanupMeta struct {
	Source         string `trace:"cleanup.source"`
	ValidUsers     int    `trace:"cleanup.valid_users"`
	TotalAuthUsers int    `trace:"cleanup.total_auth_users"`
	Orphaned       int    `trace:"cleanup.orphaned"`
	Deleted        int    `trace:"cleanup.deleted"`
	Failed         int    `trace:"cleanup.failed"`
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	Body        string `trace:"http.request.body,omitempty"`
	IPHash      string `trace:"http.request.net.peer.ip_hash"`
	UserAgent   string `trace:"http.request.user_agent"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceResponseLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	ProjectName string `trace:"project.name"`
	Code        int    `trace:"http.response.code"`
	StatusCode  int    `trace:"http.response.status_code"`
	Body        string `trace:"http.response.body,omitempty"`
	Error       string `trace:"http.response.error_message,omitempty"`
	Version     string `trace:"log.version"`
	ResponseTS  string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceAuditLogMeta struct {
	Action   string `trace:"audit.action"`
	Actor    string `trace:"audit.actor"`
	Role     string `trace:"audit.role"`
	LoggedAt string `trace:"audit.logged_at"`
}
