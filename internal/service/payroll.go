package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/domain/payroll"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const payrollSheet = "급여"

var payrollHeader = []string{
	"이름", "매장", "근무일수", "총 근무시간", "시급",
	"기본급", "주휴수당", "초과근무", "4대보험", "소득세", "공제합계", "실수령액",
}

type PayrollService struct {
	logger  *zap.Logger
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	conf    *config.Configuration
	records AttendanceStore
	users   UserStore
}

func NewPayrollService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	records AttendanceStore,
	users UserStore,
) *PayrollService {
	return &PayrollService{
		logger:  logger,
		trace:   trace,
		metric:  metric,
		conf:    conf,
		records: records,
		users:   users,
	}
}

func monthRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// Monthly 當月每位員工一筆；在職或當月有出勤紀錄者列入
func (s *PayrollService) Monthly(ctx context.Context, query *dto.SalaryQueryDto) ([]*dto.SalaryResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)

	users, err := s.users.List(ctx, model.UserFilter{Store: query.Store, Name: query.Name})
	if err != nil {
		appErr := cErr.DatabaseError("database ListUsers error")
		s.countRun("error")
		end(appErr)
		return nil, appErr
	}
	from, to := monthRange(query.Year, query.Month)
	records, err := s.records.List(ctx, model.AttendanceFilter{Store: query.Store, Name: query.Name, From: from, To: to})
	if err != nil {
		appErr := cErr.DatabaseError("database ListWorkRecords error")
		s.countRun("error")
		end(appErr)
		return nil, appErr
	}
	byUID := make(map[string][]*model.AttendanceRecord)
	for _, r := range records {
		byUID[r.UID] = append(byUID[r.UID], r)
	}

	result := make([]*dto.SalaryResponseDto, 0, len(users))
	var netTotal, hoursTotal int64
	failed := 0
	for _, user := range users {
		own := byUID[user.UID]
		if user.Status != core.StatusActive && len(own) == 0 {
			continue
		}
		row, err := s.compute(user, own, query.Year, query.Month)
		if err != nil {
			// 單一員工紀錄有誤只標記該列，其餘照算
			s.logger.Warn("payroll row skipped", zap.String("uid", user.UID), zap.Error(err))
			failed++
			result = append(result, s.invalidRow(user, query.Year, query.Month, err))
			continue
		}
		netTotal += row.NetSalary
		hoursTotal += row.TotalHours
		result = append(result, row)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Store != result[j].Store {
			return result[i].Store < result[j].Store
		}
		return result[i].Name < result[j].Name
	})

	s.trace.ApplyTraceAttributes(span, core.TracePayrollMeta{
		Year:       query.Year,
		Month:      query.Month,
		Employees:  len(result),
		Records:    len(records),
		TotalHours: hoursTotal,
		NetTotal:   netTotal,
		Failed:     failed,
	})
	if failed > 0 {
		s.countRun("partial")
	} else {
		s.countRun("ok")
	}
	end(nil)
	return result, nil
}

func (s *PayrollService) invalidRow(user *model.User, year, month int, err error) *dto.SalaryResponseDto {
	return &dto.SalaryResponseDto{
		UID:            user.UID,
		Name:           user.Name,
		Store:          user.Store,
		Year:           year,
		Month:          month,
		HourlyWage:     user.HourlyWage,
		InvalidRecord:  true,
		Error:          cErr.From(err).ErrorDesc(),
		MinWeeklyHours: s.conf.Payroll.MinWeeklyHours,
		WeeklyHours:    s.conf.Payroll.WeeklyHours,
	}
}

// ForEmployee 單一員工（getMySalary）
func (s *PayrollService) ForEmployee(ctx context.Context, uid string, year, month int) (*dto.SalaryResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)

	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		appErr := storeError(err, "employee not found")
		end(nil)
		return nil, appErr
	}
	from, to := monthRange(year, month)
	records, err := s.records.List(ctx, model.AttendanceFilter{UID: uid, From: from, To: to})
	if err != nil {
		appErr := cErr.DatabaseError("database ListWorkRecords error")
		s.countRun("error")
		end(appErr)
		return nil, appErr
	}
	row, err := s.compute(user, records, year, month)
	if err != nil {
		s.countRun("error")
		end(err)
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, core.TracePayrollMeta{
		Year:       year,
		Month:      month,
		Employees:  1,
		Records:    len(records),
		TotalHours: row.TotalHours,
		NetTotal:   row.NetSalary,
	})
	s.countRun("ok")
	end(nil)
	return row, nil
}

func (s *PayrollService) compute(user *model.User, records []*model.AttendanceRecord, year, month int) (*dto.SalaryResponseDto, error) {
	shifts := make([]payroll.Shift, 0, len(records))
	for _, r := range records {
		shift := payroll.Shift{Date: r.Date, ClockIn: r.ClockIn}
		if r.ClockOut != nil {
			shift.ClockOut = *r.ClockOut
		}
		shifts = append(shifts, shift)
	}
	b, err := payroll.Compute(shifts, user.HourlyWage)
	if err != nil {
		return nil, cErr.InvalidWorkRecord(fmt.Sprintf("%s: %s", user.Name, err.Error()))
	}
	if !b.Empty() && s.metric.PayrollNetAmount != nil {
		s.metric.PayrollNetAmount.WithLabelValues(user.Store).Observe(float64(b.NetSalary))
	}
	return &dto.SalaryResponseDto{
		UID:              user.UID,
		Name:             user.Name,
		Store:            user.Store,
		Year:             year,
		Month:            month,
		HourlyWage:       b.HourlyWage,
		WorkDays:         b.WorkDays,
		TotalHours:       b.TotalHours,
		TotalWorkTime:    payroll.FormatDuration(int(b.TotalMinutes)),
		BaseSalary:       b.BaseSalary,
		WeeklyHolidayPay: b.WeeklyHolidayPay,
		Overtime:         b.Overtime,
		Insurance:        b.Insurance,
		Tax:              b.Tax,
		Deduction:        b.Deduction,
		NetSalary:        b.NetSalary,
		NoRecords:        b.Empty(),
		MinWeeklyHours:   s.conf.Payroll.MinWeeklyHours,
		WeeklyHours:      s.conf.Payroll.WeeklyHours,
	}, nil
}

// Export 當月薪資表輸出為 xlsx
func (s *PayrollService) Export(ctx context.Context, query *dto.SalaryQueryDto, w io.Writer) error {
	rows, err := s.Monthly(ctx, query)
	if err != nil {
		return err
	}
	_, _, end := s.trace.WithSpan(ctx)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("close workbook failed", zap.Error(err))
		}
	}()
	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		appErr := cErr.InternalServer(err.Error())
		end(appErr)
		return appErr
	}
	title := fmt.Sprintf("%d년 %d월 급여", query.Year, query.Month)
	_ = f.SetCellValue(payrollSheet, "A1", title)
	if err := f.SetSheetRow(payrollSheet, "A2", &payrollHeader); err != nil {
		appErr := cErr.InternalServer(err.Error())
		end(appErr)
		return appErr
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetCellStyle(payrollSheet, "A2", "L2", headerStyle)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err == nil {
		_ = f.SetCellStyle(payrollSheet, "E3", fmt.Sprintf("L%d", len(rows)+2), moneyStyle)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		values := []any{
			r.Name, r.Store, r.WorkDays, r.TotalWorkTime, r.HourlyWage,
			r.BaseSalary, r.WeeklyHolidayPay, r.Overtime, r.Insurance, r.Tax, r.Deduction, r.NetSalary,
		}
		switch {
		case r.InvalidRecord:
			values = []any{r.Name, r.Store, 0, "근무 기록 오류", r.HourlyWage, r.Error}
		case r.NoRecords:
			values = []any{r.Name, r.Store, 0, "근무 기록 없음"}
		}
		if err := f.SetSheetRow(payrollSheet, cell, &values); err != nil {
			appErr := cErr.InternalServer(err.Error())
			end(appErr)
			return appErr
		}
	}
	_ = f.SetColWidth(payrollSheet, "A", "B", 14)
	_ = f.SetColWidth(payrollSheet, "D", "D", 16)
	_ = f.SetColWidth(payrollSheet, "E", "L", 12)

	if _, err := f.WriteTo(w); err != nil {
		appErr := cErr.InternalServer("write workbook: " + err.Error())
		end(appErr)
		return appErr
	}
	end(nil)
	return nil
}

func (s *PayrollService) countRun(status string) {
	if s.metric.PayrollRunsTotal != nil {
		s.metric.PayrollRunsTotal.WithLabelValues(status).Inc()
	}
}
