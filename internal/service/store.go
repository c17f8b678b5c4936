package service

import (
	"context"
	"time"

	"mannamsalon/internal/core"
	fluentdModel "mannamsalon/internal/database/fluentd/model"
	"mannamsalon/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 服務層只依賴下列介面；Mongo / Redis / Firebase / Fluentd 實作於 database 套件

type UserStore interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUID(ctx context.Context, uid string) (*model.User, error)
	FindActiveByName(ctx context.Context, name string) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]*model.User, error)
	ListUIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, user *model.User) error
	DeleteByUID(ctx context.Context, uid string) error
	Count(ctx context.Context, filter model.UserFilter) (int64, error)
}

type AttendanceStore interface {
	Insert(ctx context.Context, record *model.AttendanceRecord) error
	GetByUIDAndDate(ctx context.Context, uid, date string) (*model.AttendanceRecord, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.AttendanceRecord, error)
	CloseShift(ctx context.Context, uid, date, clockOut string, status core.AttendanceStatus) (bool, error)
	List(ctx context.Context, filter model.AttendanceFilter) ([]*model.AttendanceRecord, error)
	Update(ctx context.Context, record *model.AttendanceRecord) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Confirm(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	CountOpen(ctx context.Context, date string) (int64, error)
}

type ContractStore interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByContractID(ctx context.Context, contractID string) (*model.Contract, error)
	List(ctx context.Context, filter model.ContractFilter) ([]*model.Contract, error)
	MarkSigned(ctx context.Context, contractID string, signedAt time.Time) (bool, error)
	DeleteDrafted(ctx context.Context, contractID string) (bool, error)
	CountByStatus(ctx context.Context, status core.ContractStatus) (int64, error)
}

type SignedContractStore interface {
	Insert(ctx context.Context, signed *model.SignedContract) error
	GetByContractID(ctx context.Context, contractID string) (*model.SignedContract, error)
	List(ctx context.Context, employeeName string) ([]*model.SignedContract, error)
}

type DraftStore interface {
	Save(ctx context.Context, draft *model.ContractDraft) error
	List(ctx context.Context) ([]*model.ContractDraft, error)
	GetByDraftID(ctx context.Context, draftID string) (*model.ContractDraft, error)
	DeleteByDraftID(ctx context.Context, draftID string) error
}

type CompanyStore interface {
	Create(ctx context.Context, company *model.Company) error
	GetByCompanyID(ctx context.Context, companyID string) (*model.Company, error)
	List(ctx context.Context) ([]*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	DeleteByCompanyID(ctx context.Context, companyID string) error
}

type NoticeStore interface {
	Create(ctx context.Context, notice *model.Notice) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Notice, error)
	List(ctx context.Context, limit int64) ([]*model.Notice, error)
	Update(ctx context.Context, notice *model.Notice) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type DocsStore interface {
	GetByUID(ctx context.Context, uid string) (*model.EmployeeDocs, error)
	SaveBankAccount(ctx context.Context, uid string, account model.BankAccount) error
	SaveHealthCert(ctx context.Context, uid string, cert model.HealthCert) error
	DeleteByUID(ctx context.Context, uid string) (bool, error)
}

type ScheduleStore interface {
	CreateMany(ctx context.Context, schedules []*model.Schedule) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Schedule, error)
	List(ctx context.Context, filter model.ScheduleFilter) ([]*model.Schedule, error)
	Update(ctx context.Context, schedule *model.Schedule) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// IdentityProvider 身份服務帳號；DeleteUser 找不到帳號時回傳 core.ErrIdentityUserNotFound
type IdentityProvider interface {
	Enabled() bool
	ListUsers(ctx context.Context) ([]core.IdentityUser, error)
	DeleteUser(ctx context.Context, uid string) error
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
}

type SessionStore interface {
	Save(ctx context.Context, session *core.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*core.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type AuditLogger interface {
	LogAudit(ctx context.Context, audit fluentdModel.AuditLog) error
}
