package service

import (
	"context"
	"time"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.uber.org/zap"
)

type DashboardService struct {
	logger    *zap.Logger
	trace     *telemetry.Trace
	users     UserStore
	records   AttendanceStore
	contracts ContractStore
	payroll   *PayrollService
	loc       *time.Location
	now       func() time.Time
}

func NewDashboardService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	users UserStore,
	records AttendanceStore,
	contracts ContractStore,
	payroll *PayrollService,
	loc *time.Location,
) *DashboardService {
	return &DashboardService{
		logger:    logger,
		trace:     trace,
		users:     users,
		records:   records,
		contracts: contracts,
		payroll:   payroll,
		loc:       loc,
		now:       time.Now,
	}
}

// Stats 未指定年月時使用本月
func (s *DashboardService) Stats(ctx context.Context, query *dto.DashboardQueryDto) (*dto.DashboardStatsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	now := s.now().In(s.loc)
	stats := &dto.DashboardStatsDto{Year: query.Year, Month: query.Month}
	if stats.Year == 0 || stats.Month == 0 {
		stats.Year, stats.Month = now.Year(), int(now.Month())
	}

	var err error
	if stats.ActiveEmployees, err = s.users.Count(ctx, model.UserFilter{Status: core.StatusActive}); err != nil {
		return nil, cErr.DatabaseError("count employees: " + err.Error())
	}
	from, to := monthRange(stats.Year, stats.Month)
	records, err := s.records.List(ctx, model.AttendanceFilter{From: from, To: to})
	if err != nil {
		return nil, cErr.DatabaseError("list work records: " + err.Error())
	}
	stats.AttendanceRecords = len(records)
	if stats.ClockedInNow, err = s.records.CountOpen(ctx, now.Format(dateLayout)); err != nil {
		return nil, cErr.DatabaseError("count open shifts: " + err.Error())
	}
	if stats.SignedContracts, err = s.contracts.CountByStatus(ctx, core.ContractSigned); err != nil {
		return nil, cErr.DatabaseError("count contracts: " + err.Error())
	}
	if stats.DraftedContracts, err = s.contracts.CountByStatus(ctx, core.ContractDrafted); err != nil {
		return nil, cErr.DatabaseError("count contracts: " + err.Error())
	}

	rows, err := s.payroll.Monthly(ctx, &dto.SalaryQueryDto{Year: stats.Year, Month: stats.Month})
	if err != nil {
		// 薪資計算失敗（例如紀錄時間有誤）不影響其他統計
		s.logger.Warn("dashboard payroll failed", zap.Error(err))
		return stats, nil
	}
	for _, r := range rows {
		stats.TotalPayroll += r.NetSalary
		stats.TotalHours += r.TotalHours
	}
	return stats, nil
}
