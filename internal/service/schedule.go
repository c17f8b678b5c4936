package service

import (
	"context"
	"strconv"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/domain/payroll"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.uber.org/zap"
)

type ScheduleService struct {
	logger    *zap.Logger
	trace     *telemetry.Trace
	schedules ScheduleStore
	users     UserStore
}

func NewScheduleService(logger *zap.Logger, trace *telemetry.Trace, schedules ScheduleStore, users UserStore) *ScheduleService {
	return &ScheduleService{logger: logger, trace: trace, schedules: schedules, users: users}
}

// List 員工只看得到自己的排班
func (s *ScheduleService) List(ctx context.Context, session *core.Session, query *dto.ScheduleQueryDto) ([]*model.Schedule, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	filter := model.ScheduleFilter{From: query.From, To: query.To, Store: query.Store, Name: query.Name, UID: query.UID}
	if !session.IsManager() {
		filter.UID = session.UID
	}
	schedules, err := s.schedules.List(ctx, filter)
	if err != nil {
		return nil, cErr.DatabaseError("database ListSchedules error")
	}
	if schedules == nil {
		schedules = []*model.Schedule{}
	}
	return schedules, nil
}

func (s *ScheduleService) Add(ctx context.Context, req *dto.ScheduleDto) (*model.Schedule, error) {
	created, err := s.BulkAdd(ctx, &dto.BulkScheduleDto{Schedules: []dto.ScheduleDto{*req}})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// BulkAdd 全部檢查通過才寫入
func (s *ScheduleService) BulkAdd(ctx context.Context, req *dto.BulkScheduleDto) ([]*model.Schedule, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if len(req.Schedules) == 0 {
		return nil, cErr.ValidateErr("schedules is empty")
	}
	users := make(map[string]*model.User)
	schedules := make([]*model.Schedule, 0, len(req.Schedules))
	for i, item := range req.Schedules {
		if _, err := payroll.WorkMinutes(item.StartTime, item.EndTime); err != nil {
			return nil, cErr.ValidateErr("schedules[" + strconv.Itoa(i) + "]: " + err.Error())
		}
		user, ok := users[item.UID]
		if !ok {
			found, err := s.users.GetByUID(ctx, item.UID)
			if err != nil {
				return nil, storeError(err, "employee not found: "+item.UID)
			}
			user = found
			users[item.UID] = found
		}
		workType := item.WorkType
		if workType == "" {
			workType = core.WorkTypeRegular
		}
		schedules = append(schedules, &model.Schedule{
			UID:       user.UID,
			Name:      user.Name,
			Store:     user.Store,
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			WorkType:  workType,
			Memo:      item.Memo,
		})
	}
	if err := s.schedules.CreateMany(ctx, schedules); err != nil {
		return nil, cErr.DatabaseError("create schedules: " + err.Error())
	}
	return schedules, nil
}

func (s *ScheduleService) Update(ctx context.Context, id string, req *dto.ScheduleDto) (*model.Schedule, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oid, err := parseObjectID(id, "scheduleId")
	if err != nil {
		return nil, err
	}
	if _, err := payroll.WorkMinutes(req.StartTime, req.EndTime); err != nil {
		return nil, cErr.ValidateErr(err.Error())
	}
	schedule, err := s.schedules.GetByID(ctx, oid)
	if err != nil {
		return nil, storeError(err, "schedule not found")
	}
	if req.UID != "" && req.UID != schedule.UID {
		user, err := s.users.GetByUID(ctx, req.UID)
		if err != nil {
			return nil, storeError(err, "employee not found")
		}
		schedule.UID, schedule.Name, schedule.Store = user.UID, user.Name, user.Store
	}
	schedule.Date = req.Date
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	if req.WorkType != "" {
		schedule.WorkType = req.WorkType
	}
	schedule.Memo = req.Memo
	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, storeError(err, "schedule not found")
	}
	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oid, err := parseObjectID(id, "scheduleId")
	if err != nil {
		return err
	}
	if err := s.schedules.DeleteByID(ctx, oid); err != nil {
		return storeError(err, "schedule not found")
	}
	return nil
}
