package core

import "go.mongodb.org/mongo-driver/bson"

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBMannamsalon MongoDatabaseName = "mannamsalon"
)

// MongoDB collections
const (
	MongoCollectionUsers           MongoCollection = "users"
	MongoCollectionAttendance      MongoCollection = "attendance"
	MongoCollectionContracts       MongoCollection = "contracts"
	MongoCollectionSignedContracts MongoCollection = "signed_contracts"
	MongoCollectionContractDrafts  MongoCollection = "contract_drafts"
	MongoCollectionCompanies       MongoCollection = "companies"
	MongoCollectionNotices         MongoCollection = "notices"
	MongoCollectionEmployeeDocs    MongoCollection = "employee_docs"
	MongoCollectionSchedules       MongoCollection = "schedules"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeySession    RedisKey = "session"     // 登入 session 資料
	RedisKeyRateLimit  RedisKey = "ratelimit"   // 依 IP 的呼叫次數
	RedisKeyServerName RedisKey = "mannamsalon" // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdAudit    FluentdSubTag = "audit_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
