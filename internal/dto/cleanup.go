package dto

type CleanupStatus string

const (
	CleanupDeleted CleanupStatus = "deleted"
	CleanupFailed  CleanupStatus = "failed"
)

// CleanupItemDto 單一孤兒帳號的處理結果
type CleanupItemDto struct {
	UID    string        `json:"uid"`
	Email  string        `json:"email,omitempty"`
	Status CleanupStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// CleanupResultDto 直接作為 /cleanupOrphanedAuth 的回應本體
type CleanupResultDto struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message,omitempty"`
	ValidUsers     int              `json:"validUsers"`
	TotalAuthUsers int              `json:"totalAuthUsers"`
	OrphanedUsers  int              `json:"orphanedUsers"`
	DeletedCount   int              `json:"deletedCount"`
	FailedCount    int              `json:"failedCount"`
	Results        []CleanupItemDto `json:"results"`
}
