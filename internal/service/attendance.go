package service

import (
	"context"
	"errors"
	"time"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/database/mongodb/repository"
	"mannamsalon/internal/domain/payroll"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type AttendanceService struct {
	logger  *zap.Logger
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	records AttendanceStore
	users   UserStore
	loc     *time.Location
	now     func() time.Time
}

func NewAttendanceService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	records AttendanceStore,
	users UserStore,
	loc *time.Location,
) *AttendanceService {
	return &AttendanceService{
		logger:  logger,
		trace:   trace,
		metric:  metric,
		records: records,
		users:   users,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *AttendanceService) today() (string, string) {
	now := s.now().In(s.loc)
	return now.Format(dateLayout), now.Format(clockLayout)
}

// ClockIn 當日第一筆寫入成功即上班；(uid, date) 已存在則拒絕且不動既有紀錄
func (s *AttendanceService) ClockIn(ctx context.Context, session *core.Session) (*model.AttendanceRecord, error) {
	if err := requireEmployee(session); err != nil {
		return nil, err
	}
	ctx, span, end := s.trace.WithSpan(ctx)
	date, clock := s.today()
	meta := core.TraceAttendanceMeta{Op: "clock_in", UID: session.UID, Date: date, Time: clock}

	record := &model.AttendanceRecord{
		UID:      session.UID,
		Name:     session.Name,
		Store:    session.Store,
		Date:     date,
		ClockIn:  clock,
		WorkType: core.WorkTypeRegular,
		Status:   core.AttendanceNormal,
	}
	if err := s.records.Insert(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			meta.Reject = "already_clocked_in"
			s.trace.ApplyTraceAttributes(span, meta)
			s.count("clock_in", "rejected")
			end(nil)
			return nil, cErr.AlreadyClockedIn("already clocked in")
		}
		appErr := cErr.DatabaseError("clock in: " + err.Error())
		s.count("clock_in", "error")
		end(appErr)
		return nil, appErr
	}
	s.trace.ApplyTraceAttributes(span, meta)
	s.count("clock_in", "ok")
	s.logger.Info("clock in", zap.String("uid", session.UID), zap.String("date", date), zap.String("time", clock))
	end(nil)
	return record, nil
}

// ClockOut 單一條件更新；未命中時再讀一次決定錯誤種類
func (s *AttendanceService) ClockOut(ctx context.Context, session *core.Session) (*model.AttendanceRecord, error) {
	if err := requireEmployee(session); err != nil {
		return nil, err
	}
	ctx, span, end := s.trace.WithSpan(ctx)
	date, clock := s.today()
	meta := core.TraceAttendanceMeta{Op: "clock_out", UID: session.UID, Date: date, Time: clock}

	closed, err := s.records.CloseShift(ctx, session.UID, date, clock, "")
	if err != nil {
		appErr := cErr.DatabaseError("clock out: " + err.Error())
		s.count("clock_out", "error")
		end(appErr)
		return nil, appErr
	}

	record, readErr := s.records.GetByUIDAndDate(ctx, session.UID, date)
	if !closed {
		var rejectErr error
		switch {
		case errors.Is(readErr, mongo.ErrNoDocuments):
			meta.Reject = "not_clocked_in"
			rejectErr = cErr.NotClockedIn("not clocked in")
		case readErr != nil:
			appErr := cErr.DatabaseError("clock out: " + readErr.Error())
			s.count("clock_out", "error")
			end(appErr)
			return nil, appErr
		case record.ClockIn == "":
			meta.Reject = "not_clocked_in"
			rejectErr = cErr.NotClockedIn("not clocked in")
		case record.ClockOut != nil:
			meta.Reject = "already_clocked_out"
			rejectErr = cErr.AlreadyClockedOut("already clocked out")
		default:
			meta.Reject = "concurrent_update"
			rejectErr = cErr.Conflict("record changed, retry")
		}
		s.trace.ApplyTraceAttributes(span, meta)
		s.count("clock_out", "rejected")
		end(nil)
		return nil, rejectErr
	}
	if readErr != nil {
		s.logger.Warn("clock out re-read failed", zap.String("uid", session.UID), zap.Error(readErr))
		out := clock
		record = &model.AttendanceRecord{UID: session.UID, Date: date, ClockOut: &out}
	}
	s.trace.ApplyTraceAttributes(span, meta)
	s.count("clock_out", "ok")
	s.logger.Info("clock out", zap.String("uid", session.UID), zap.String("date", date), zap.String("time", clock))
	end(nil)
	return record, nil
}

// Today 尚未打卡時回傳 nil
func (s *AttendanceService) Today(ctx context.Context, session *core.Session) (*model.AttendanceRecord, error) {
	if err := requireEmployee(session); err != nil {
		return nil, err
	}
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	date, _ := s.today()
	record, err := s.records.GetByUIDAndDate(ctx, session.UID, date)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, cErr.DatabaseError(err.Error())
	}
	return record, nil
}

func (s *AttendanceService) List(ctx context.Context, query *dto.WorkRecordQueryDto) ([]*model.AttendanceRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	records, err := s.records.List(ctx, model.AttendanceFilter{
		UID:   query.UID,
		Name:  query.Name,
		Store: query.Store,
		From:  query.From,
		To:    query.To,
	})
	if err != nil {
		return nil, cErr.DatabaseError("database ListWorkRecords error")
	}
	if records == nil {
		records = []*model.AttendanceRecord{}
	}
	return records, nil
}

// Add 管理者補登；姓名與門市取自員工資料
func (s *AttendanceService) Add(ctx context.Context, req *dto.AddWorkRecordDto) (*model.AttendanceRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := checkShift(req.ClockIn, req.ClockOut); err != nil {
		return nil, err
	}
	user, err := s.users.GetByUID(ctx, req.UID)
	if err != nil {
		return nil, storeError(err, "employee not found")
	}
	record := &model.AttendanceRecord{
		UID:      user.UID,
		Name:     user.Name,
		Store:    user.Store,
		Date:     req.Date,
		ClockIn:  req.ClockIn,
		ClockOut: req.ClockOut,
		WorkType: req.WorkType,
		Status:   req.Status,
	}
	if record.WorkType == "" {
		record.WorkType = core.WorkTypeRegular
	}
	if record.Status == "" {
		record.Status = core.AttendanceNormal
	}
	if err := s.records.Insert(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, cErr.Conflict("work record already exists for " + req.Date)
		}
		return nil, cErr.DatabaseError(err.Error())
	}
	return record, nil
}

func (s *AttendanceService) Update(ctx context.Context, id string, req *dto.UpdateWorkRecordDto) (*model.AttendanceRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oid, err := parseObjectID(id, "recordId")
	if err != nil {
		return nil, err
	}
	record, err := s.records.GetByID(ctx, oid)
	if err != nil {
		return nil, storeError(err, "work record not found")
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.ClockIn != nil {
		record.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		if *req.ClockOut == "" {
			record.ClockOut = nil
		} else {
			out := *req.ClockOut
			record.ClockOut = &out
		}
	}
	if req.WorkType != nil {
		record.WorkType = *req.WorkType
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if err := checkShift(record.ClockIn, record.ClockOut); err != nil {
		return nil, err
	}
	if err := s.records.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, cErr.Conflict("work record already exists for " + record.Date)
		}
		return nil, storeError(err, "work record not found")
	}
	return record, nil
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oid, err := parseObjectID(id, "recordId")
	if err != nil {
		return err
	}
	if err := s.records.DeleteByID(ctx, oid); err != nil {
		return storeError(err, "work record not found")
	}
	return nil
}

// Confirm 已確認的紀錄不重複計入
func (s *AttendanceService) Confirm(ctx context.Context, ids []string) (*dto.ConfirmResultDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseObjectID(id, "recordId")
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	confirmed, err := s.records.Confirm(ctx, oids)
	if err != nil {
		return nil, cErr.DatabaseError(err.Error())
	}
	return &dto.ConfirmResultDto{Requested: len(oids), Confirmed: confirmed}, nil
}

func (s *AttendanceService) count(event, status string) {
	if s.metric.ClockEventsTotal != nil {
		s.metric.ClockEventsTotal.WithLabelValues(event, status).Inc()
	}
}

func checkShift(clockIn string, clockOut *string) error {
	if _, err := payroll.ParseClock(clockIn); err != nil {
		return cErr.InvalidWorkRecord(err.Error())
	}
	if clockOut == nil {
		return nil
	}
	if _, err := payroll.WorkMinutes(clockIn, *clockOut); err != nil {
		return cErr.InvalidWorkRecord(err.Error())
	}
	return nil
}
