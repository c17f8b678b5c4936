package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	fluentdModel "mannamsalon/internal/database/fluentd/model"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/database/mongodb/repository"
	redisRepository "mannamsalon/internal/database/redis/repository"
	"mannamsalon/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 記憶體版 store，行為對齊 Mongo repository（找不到回 mongo.ErrNoDocuments，唯一索引衝突回 ErrDuplicate）

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newFakeUsers(users ...model.User) *fakeUsers {
	f := &fakeUsers{users: map[string]model.User{}}
	for _, u := range users {
		f.users[u.UID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.UID]; ok {
		return nil, repository.ErrDuplicate
	}
	f.users[user.UID] = *user
	return user, nil
}

func (f *fakeUsers) GetByUID(_ context.Context, uid string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func (f *fakeUsers) FindActiveByName(_ context.Context, name string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Name == name && u.Status == core.StatusActive {
			u := u
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUsers) match(u model.User, filter model.UserFilter) bool {
	return (filter.Store == "" || u.Store == filter.Store) &&
		(filter.Status == "" || u.Status == filter.Status) &&
		(filter.Name == "" || u.Name == filter.Name)
}

func (f *fakeUsers) List(_ context.Context, filter model.UserFilter) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.User
	for _, u := range f.users {
		if f.match(u, filter) {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (f *fakeUsers) ListUIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.users))
	for uid := range f.users {
		out = append(out, uid)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeUsers) Update(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.UID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.users[user.UID] = *user
	return nil
}

func (f *fakeUsers) DeleteByUID(_ context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[uid]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.users, uid)
	return nil
}

func (f *fakeUsers) Count(ctx context.Context, filter model.UserFilter) (int64, error) {
	list, _ := f.List(ctx, filter)
	return int64(len(list)), nil
}

type fakeAttendance struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]model.AttendanceRecord
	writes  int
}

func newFakeAttendance(records ...model.AttendanceRecord) *fakeAttendance {
	f := &fakeAttendance{records: map[primitive.ObjectID]model.AttendanceRecord{}}
	for _, r := range records {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		f.records[r.ID] = r
	}
	return f
}

func (f *fakeAttendance) find(uid, date string) (model.AttendanceRecord, bool) {
	for _, r := range f.records {
		if r.UID == uid && r.Date == date {
			return r, true
		}
	}
	return model.AttendanceRecord{}, false
}

func (f *fakeAttendance) Insert(_ context.Context, record *model.AttendanceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.find(record.UID, record.Date); ok {
		return repository.ErrDuplicate
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	f.records[record.ID] = *record
	f.writes++
	return nil
}

func (f *fakeAttendance) GetByUIDAndDate(_ context.Context, uid, date string) (*model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.find(uid, date)
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &r, nil
}

func (f *fakeAttendance) GetByID(_ context.Context, id primitive.ObjectID) (*model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &r, nil
}

func (f *fakeAttendance) CloseShift(_ context.Context, uid, date, clockOut string, status core.AttendanceStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.find(uid, date)
	if !ok || r.ClockIn == "" || r.ClockOut != nil {
		return false, nil
	}
	out := clockOut
	r.ClockOut = &out
	if status != "" {
		r.Status = status
	}
	f.records[r.ID] = r
	f.writes++
	return true, nil
}

func (f *fakeAttendance) List(_ context.Context, filter model.AttendanceFilter) ([]*model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.AttendanceRecord
	for _, r := range f.records {
		if filter.UID != "" && r.UID != filter.UID ||
			filter.Name != "" && r.Name != filter.Name ||
			filter.Store != "" && r.Store != filter.Store ||
			filter.From != "" && r.Date < filter.From ||
			filter.To != "" && r.Date > filter.To {
			continue
		}
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (f *fakeAttendance) Update(_ context.Context, record *model.AttendanceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[record.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	if other, ok := f.find(record.UID, record.Date); ok && other.ID != record.ID {
		return repository.ErrDuplicate
	}
	f.records[record.ID] = *record
	f.writes++
	return nil
}

func (f *fakeAttendance) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendance) Confirm(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		r, ok := f.records[id]
		if !ok || r.Confirmed {
			continue
		}
		r.Confirmed = true
		f.records[id] = r
		n++
	}
	return n, nil
}

func (f *fakeAttendance) CountOpen(_ context.Context, date string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.records {
		if r.Date == date && r.ClockOut == nil {
			n++
		}
	}
	return n, nil
}

type fakeContracts struct {
	mu        sync.Mutex
	contracts map[string]model.Contract
	// beforeDelete 在 DeleteDrafted 取得鎖之前執行，用來插入並行的簽署
	beforeDelete func(contractID string)
}

func newFakeContracts() *fakeContracts {
	return &fakeContracts{contracts: map[string]model.Contract{}}
}

func (f *fakeContracts) Create(_ context.Context, contract *model.Contract) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contracts[contract.ContractID]; ok {
		return repository.ErrDuplicate
	}
	f.contracts[contract.ContractID] = *contract
	return nil
}

func (f *fakeContracts) GetByContractID(_ context.Context, contractID string) (*model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contracts[contractID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (f *fakeContracts) List(_ context.Context, filter model.ContractFilter) ([]*model.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Contract
	for _, c := range f.contracts {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeContracts) MarkSigned(_ context.Context, contractID string, signedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contracts[contractID]
	if !ok || c.Status == core.ContractSigned {
		return false, nil
	}
	c.Status = core.ContractSigned
	c.SignedAt = &signedAt
	f.contracts[contractID] = c
	return true, nil
}

func (f *fakeContracts) DeleteDrafted(_ context.Context, contractID string) (bool, error) {
	if f.beforeDelete != nil {
		f.beforeDelete(contractID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contracts[contractID]
	if !ok || c.Status != core.ContractDrafted {
		return false, nil
	}
	delete(f.contracts, contractID)
	return true, nil
}

func (f *fakeContracts) CountByStatus(_ context.Context, status core.ContractStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.contracts {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeSigned struct {
	mu     sync.Mutex
	signed map[string]model.SignedContract
}

func newFakeSigned() *fakeSigned {
	return &fakeSigned{signed: map[string]model.SignedContract{}}
}

func (f *fakeSigned) Insert(_ context.Context, signed *model.SignedContract) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.signed[signed.ContractID]; ok {
		return repository.ErrDuplicate
	}
	f.signed[signed.ContractID] = *signed
	return nil
}

func (f *fakeSigned) GetByContractID(_ context.Context, contractID string) (*model.SignedContract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.signed[contractID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeSigned) List(_ context.Context, employeeName string) ([]*model.SignedContract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.SignedContract
	for _, s := range f.signed {
		if employeeName != "" && s.Contract.EmployeeName != employeeName {
			continue
		}
		s := s
		out = append(out, &s)
	}
	return out, nil
}

type fakeDrafts struct {
	mu     sync.Mutex
	drafts map[string]model.ContractDraft
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{drafts: map[string]model.ContractDraft{}}
}

func (f *fakeDrafts) Save(_ context.Context, draft *model.ContractDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts[draft.DraftID] = *draft
	return nil
}

func (f *fakeDrafts) List(_ context.Context) ([]*model.ContractDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.ContractDraft
	for _, d := range f.drafts {
		d := d
		out = append(out, &d)
	}
	return out, nil
}

func (f *fakeDrafts) GetByDraftID(_ context.Context, draftID string) (*model.ContractDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[draftID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &d, nil
}

func (f *fakeDrafts) DeleteByDraftID(_ context.Context, draftID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drafts[draftID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.drafts, draftID)
	return nil
}

type fakeCompanies struct {
	companies map[string]model.Company
}

func newFakeCompanies(companies ...model.Company) *fakeCompanies {
	f := &fakeCompanies{companies: map[string]model.Company{}}
	for _, c := range companies {
		f.companies[c.CompanyID] = c
	}
	return f
}

func (f *fakeCompanies) Create(_ context.Context, company *model.Company) error {
	if _, ok := f.companies[company.CompanyID]; ok {
		return repository.ErrDuplicate
	}
	f.companies[company.CompanyID] = *company
	return nil
}

func (f *fakeCompanies) GetByCompanyID(_ context.Context, companyID string) (*model.Company, error) {
	c, ok := f.companies[companyID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (f *fakeCompanies) List(_ context.Context) ([]*model.Company, error) {
	var out []*model.Company
	for _, c := range f.companies {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeCompanies) Update(_ context.Context, company *model.Company) error {
	if _, ok := f.companies[company.CompanyID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.companies[company.CompanyID] = *company
	return nil
}

func (f *fakeCompanies) DeleteByCompanyID(_ context.Context, companyID string) error {
	if _, ok := f.companies[companyID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.companies, companyID)
	return nil
}

type fakeNotices struct {
	notices []model.Notice
	clock   time.Time
}

func (f *fakeNotices) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeNotices) Create(_ context.Context, notice *model.Notice) error {
	notice.ID = primitive.NewObjectID()
	notice.CreatedAt = f.tick()
	notice.UpdatedAt = notice.CreatedAt
	f.notices = append(f.notices, *notice)
	return nil
}

func (f *fakeNotices) GetByID(_ context.Context, id primitive.ObjectID) (*model.Notice, error) {
	for _, n := range f.notices {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeNotices) List(_ context.Context, limit int64) ([]*model.Notice, error) {
	out := make([]*model.Notice, 0, len(f.notices))
	for _, n := range f.notices {
		n := n
		out = append(out, &n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotices) Update(_ context.Context, notice *model.Notice) error {
	for i, n := range f.notices {
		if n.ID == notice.ID {
			notice.UpdatedAt = f.tick()
			f.notices[i] = *notice
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeNotices) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for i, n := range f.notices {
		if n.ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeDocs struct {
	docs map[string]model.EmployeeDocs
	// deleteErr 非 nil 時下一次 DeleteByUID 失敗一次
	deleteErr error
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: map[string]model.EmployeeDocs{}}
}

func (f *fakeDocs) GetByUID(_ context.Context, uid string) (*model.EmployeeDocs, error) {
	d, ok := f.docs[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &d, nil
}

func (f *fakeDocs) SaveBankAccount(_ context.Context, uid string, account model.BankAccount) error {
	d := f.docs[uid]
	d.UID = uid
	d.BankAccount = &account
	f.docs[uid] = d
	return nil
}

func (f *fakeDocs) SaveHealthCert(_ context.Context, uid string, cert model.HealthCert) error {
	d := f.docs[uid]
	d.UID = uid
	d.HealthCert = &cert
	f.docs[uid] = d
	return nil
}

func (f *fakeDocs) DeleteByUID(_ context.Context, uid string) (bool, error) {
	if err := f.deleteErr; err != nil {
		f.deleteErr = nil
		return false, err
	}
	_, ok := f.docs[uid]
	delete(f.docs, uid)
	return ok, nil
}

type fakeSchedules struct {
	schedules map[primitive.ObjectID]model.Schedule
}

func newFakeSchedules() *fakeSchedules {
	return &fakeSchedules{schedules: map[primitive.ObjectID]model.Schedule{}}
}

func (f *fakeSchedules) CreateMany(_ context.Context, schedules []*model.Schedule) error {
	for _, s := range schedules {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		f.schedules[s.ID] = *s
	}
	return nil
}

func (f *fakeSchedules) GetByID(_ context.Context, id primitive.ObjectID) (*model.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeSchedules) List(_ context.Context, filter model.ScheduleFilter) ([]*model.Schedule, error) {
	var out []*model.Schedule
	for _, s := range f.schedules {
		if filter.UID != "" && s.UID != filter.UID {
			continue
		}
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (f *fakeSchedules) Update(_ context.Context, schedule *model.Schedule) error {
	if _, ok := f.schedules[schedule.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.schedules[schedule.ID] = *schedule
	return nil
}

func (f *fakeSchedules) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.schedules[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.schedules, id)
	return nil
}

// fakeIdentity failOn 內的 uid 刪除時回傳指定錯誤
type fakeIdentity struct {
	enabled  bool
	accounts map[string]core.IdentityUser
	failOn   map[string]error
	deleted  []string
	created  int
}

func newFakeIdentity(accounts ...core.IdentityUser) *fakeIdentity {
	f := &fakeIdentity{enabled: true, accounts: map[string]core.IdentityUser{}, failOn: map[string]error{}}
	for _, a := range accounts {
		f.accounts[a.UID] = a
	}
	return f
}

func (f *fakeIdentity) Enabled() bool { return f.enabled }

func (f *fakeIdentity) ListUsers(_ context.Context) ([]core.IdentityUser, error) {
	out := make([]core.IdentityUser, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (f *fakeIdentity) DeleteUser(_ context.Context, uid string) error {
	if err, ok := f.failOn[uid]; ok {
		return err
	}
	if _, ok := f.accounts[uid]; !ok {
		return core.ErrIdentityUserNotFound
	}
	delete(f.accounts, uid)
	f.deleted = append(f.deleted, uid)
	return nil
}

func (f *fakeIdentity) CreateUser(_ context.Context, email, _ string, displayName string) (string, error) {
	f.created++
	uid := "fb-" + displayName
	f.accounts[uid] = core.IdentityUser{UID: uid, Email: email, DisplayName: displayName}
	return uid, nil
}

type fakeSessions struct {
	sessions map[string]core.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]core.Session{}}
}

func (f *fakeSessions) Save(_ context.Context, session *core.Session, _ time.Duration) error {
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessions) Get(_ context.Context, sessionID string) (*core.Session, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, redisRepository.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessions) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakeAudit struct {
	logs []fluentdModel.AuditLog
}

func (f *fakeAudit) LogAudit(_ context.Context, audit fluentdModel.AuditLog) error {
	f.logs = append(f.logs, audit)
	return nil
}

func (f *fakeAudit) actions() []string {
	out := make([]string, 0, len(f.logs))
	for _, l := range f.logs {
		out = append(out, l.Action)
	}
	return out
}

// testEnv 組好所有服務，欄位可在測試中直接檢查
type testEnv struct {
	conf       *config.Configuration
	users      *fakeUsers
	records    *fakeAttendance
	contracts  *fakeContracts
	signed     *fakeSigned
	drafts     *fakeDrafts
	companies  *fakeCompanies
	notices    *fakeNotices
	docs       *fakeDocs
	schedules  *fakeSchedules
	identity   *fakeIdentity
	sessions   *fakeSessions
	auditSink  *fakeAudit
	audit      *AuditService
	auth       *AuthService
	identitySv *IdentityService
	employees  *EmployeeService
	attendance *AttendanceService
	payroll    *PayrollService
	contractSv *ContractService
	companySv  *CompanyService
	noticeSv   *NoticeService
	docsSv     *DocsService
	scheduleSv *ScheduleService
	dashboard  *DashboardService
	rpc        *RPCService
}

var testLocation = time.FixedZone("KST", 9*60*60)

func newTestEnv(users ...model.User) *testEnv {
	logger := zap.NewNop()
	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	conf := &config.Configuration{}
	conf.App.Name = "mannamsalon"
	conf.App.SignBaseURL = "https://sign.example.com/contract-sign.html"
	conf.Session.JWTSecret = "test-secret"
	conf.Payroll.MinWeeklyHours = 15
	conf.Payroll.WeeklyHours = 40

	e := &testEnv{
		conf:      conf,
		users:     newFakeUsers(users...),
		records:   newFakeAttendance(),
		contracts: newFakeContracts(),
		signed:    newFakeSigned(),
		drafts:    newFakeDrafts(),
		companies: newFakeCompanies(),
		notices:   &fakeNotices{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		docs:      newFakeDocs(),
		schedules: newFakeSchedules(),
		identity:  newFakeIdentity(),
		sessions:  newFakeSessions(),
		auditSink: &fakeAudit{},
	}
	e.audit = NewAuditService(logger, trace, e.auditSink)
	e.auth = NewAuthService(logger, trace, conf, e.users, e.sessions)
	e.identitySv = NewIdentityService(logger, trace, metric, e.users, e.identity, e.audit)
	e.employees = NewEmployeeService(logger, trace, conf, e.users, e.docs, e.identity, e.identitySv, e.audit)
	e.attendance = NewAttendanceService(logger, trace, metric, e.records, e.users, testLocation)
	e.payroll = NewPayrollService(logger, trace, metric, conf, e.records, e.users)
	e.contractSv = NewContractService(logger, trace, metric, conf, e.contracts, e.signed, e.drafts, e.companies, e.audit)
	e.companySv = NewCompanyService(logger, trace, e.companies)
	e.noticeSv = NewNoticeService(logger, trace, e.notices)
	e.docsSv = NewDocsService(logger, trace, e.docs, e.users, testLocation)
	e.scheduleSv = NewScheduleService(logger, trace, e.schedules, e.users)
	e.dashboard = NewDashboardService(logger, trace, e.users, e.records, e.contracts, e.payroll, testLocation)
	e.rpc = NewRPCService(logger, trace, metric, e.auth, e.employees, e.attendance, e.payroll,
		e.contractSv, e.scheduleSv, e.dashboard, e.audit)
	return e
}

// at 固定所有服務的時鐘
func (e *testEnv) at(t time.Time) {
	now := func() time.Time { return t }
	e.auth.now = now
	e.attendance.now = now
	e.contractSv.now = now
	e.companySv.now = now
	e.docsSv.now = now
	e.dashboard.now = now
}

func employeeSession(u model.User) *core.Session {
	return &core.Session{ID: "sess-" + u.UID, Role: core.RoleEmployee, UID: u.UID, Name: u.Name, Store: u.Store}
}

func managerSession() *core.Session {
	return &core.Session{ID: "sess-manager", Role: core.RoleManager, Name: "관리자"}
}

var (
	kim = model.User{UID: "u-kim", Name: "김민지", Store: "상동점", HourlyWage: 10000, Status: core.StatusActive}
	lee = model.User{UID: "u-lee", Name: "이서준", Store: "부천역사점", HourlyWage: 12000, Status: core.StatusActive}
)
