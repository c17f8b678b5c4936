package model

// AuditLog 記錄管理動作（離職、孤兒帳號清理、logAction）
type AuditLog struct {
	Action      string         `bson:"action" json:"action"`
	Actor       string         `bson:"actor,omitempty" json:"actor,omitempty"`
	Role        string         `bson:"role,omitempty" json:"role,omitempty"`
	Details     map[string]any `bson:"details,omitempty" json:"details,omitempty"`
	ProjectName string         `bson:"project_name,omitempty" json:"project_name,omitempty"`
	Version     string         `bson:"version" json:"version"`
	LoggedAt    string         `bson:"logged_at" json:"logged_at"`
}
