package model

// ResponseLog 以 request_id 對應 RequestLog；role / uid 來自當次 session
type ResponseLog struct {
	RequestID   string  `bson:"request_id" json:"request_id"`
	ProjectName string  `bson:"project_name,omitempty" json:"project_name,omitempty"`
	Code        int     `bson:"code" json:"code"`
	StatusCode  int     `bson:"status_code" json:"status_code"`
	Role        string  `bson:"role,omitempty" json:"role,omitempty"`
	UID         string  `bson:"uid,omitempty" json:"uid,omitempty"`
	DurationMs  float64 `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	Body        string  `bson:"body,omitempty" json:"body,omitempty"`
	Error       string  `bson:"error,omitempty" json:"error,omitempty"`
	Version     string  `bson:"version,omitempty" json:"version,omitempty"`
	ResponseTS  string  `bson:"response_ts" json:"response_ts"`
	LoggedAt    string  `bson:"logged_at" json:"logged_at"`
}
