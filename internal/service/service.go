package service

import (
	"errors"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/client"
	fluentdRepository "mannamsalon/internal/database/fluentd/repository"
	"mannamsalon/internal/database/mongodb/repository"
	redisRepository "mannamsalon/internal/database/redis/repository"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(UserStore), new(*repository.UserRepository)),
	wire.Bind(new(AttendanceStore), new(*repository.AttendanceRepository)),
	wire.Bind(new(ContractStore), new(*repository.ContractRepository)),
	wire.Bind(new(SignedContractStore), new(*repository.SignedContractRepository)),
	wire.Bind(new(DraftStore), new(*repository.ContractDraftRepository)),
	wire.Bind(new(CompanyStore), new(*repository.CompanyRepository)),
	wire.Bind(new(NoticeStore), new(*repository.NoticeRepository)),
	wire.Bind(new(DocsStore), new(*repository.EmployeeDocsRepository)),
	wire.Bind(new(ScheduleStore), new(*repository.ScheduleRepository)),
	wire.Bind(new(IdentityProvider), new(*client.FirebaseAuthClient)),
	wire.Bind(new(SessionStore), new(*redisRepository.SessionRepository)),
	wire.Bind(new(AuditLogger), new(*fluentdRepository.LogRepository)),
	ProvideLocation,
	NewAuditService,
	NewAuthService,
	NewIdentityService,
	NewEmployeeService,
	NewAttendanceService,
	NewPayrollService,
	NewContractService,
	NewCompanyService,
	NewNoticeService,
	NewDocsService,
	NewScheduleService,
	NewDashboardService,
	NewRPCService,
	NewHealthService,
)

// ProvideLocation 出勤日期一律以店舖所在時區計算
func ProvideLocation(conf *config.Configuration) (*time.Location, error) {
	name := conf.App.Timezone
	if name == "" {
		name = "Asia/Seoul"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, cErr.ConfigurationError("invalid APP__TIMEZONE: " + name)
	}
	return loc, nil
}

// storeError 將資料層錯誤轉為應用錯誤
func storeError(err error, notFound string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return cErr.NotFound(notFound)
	}
	return cErr.DatabaseError(err.Error())
}

func parseObjectID(id, field string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, cErr.BadRequestParams("invalid " + field)
	}
	return oid, nil
}

func requireSession(session *core.Session) error {
	if session == nil || session.ID == "" {
		return cErr.InvalidSession("login required")
	}
	return nil
}

func requireManager(session *core.Session) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if !session.IsManager() {
		return cErr.Forbidden("manager only")
	}
	return nil
}

// requireEmployee 員工本人操作（打卡等）需要 uid
func requireEmployee(session *core.Session) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if session.Role != core.RoleEmployee || session.UID == "" {
		return cErr.Forbidden("employee session required")
	}
	return nil
}
