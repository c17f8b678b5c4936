package service

import (
	"bytes"
	"context"
	"testing"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedShifts(t *testing.T, e *testEnv, uid string, shifts ...[3]string) {
	t.Helper()
	for _, s := range shifts {
		var out *string
		if s[2] != "" {
			out = strPtr(s[2])
		}
		_, err := e.attendance.Add(context.Background(), &dto.AddWorkRecordDto{UID: uid, Date: s[0], ClockIn: s[1], ClockOut: out})
		require.NoError(t, err)
	}
}

func TestMonthlyPayroll(t *testing.T) {
	resigned := model.User{UID: "u-park", Name: "박하늘", Store: "상동점", HourlyWage: 10000, Status: core.StatusResigned}
	e := newTestEnv(kim, lee, resigned)
	seedShifts(t, e, kim.UID,
		[3]string{"2025-03-03", "09:00", "18:00"},
		[3]string{"2025-03-04", "09:00", "18:00"},
		[3]string{"2025-03-05", "09:00", ""},
		[3]string{"2025-04-01", "09:00", "18:00"},
	)

	rows, err := e.payroll.Monthly(context.Background(), &dto.SalaryQueryDto{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 부천역사점 < 상동점
	assert.Equal(t, lee.UID, rows[0].UID)
	assert.True(t, rows[0].NoRecords)
	assert.Zero(t, rows[0].NetSalary)

	got := rows[1]
	assert.Equal(t, kim.UID, got.UID)
	assert.False(t, got.NoRecords)
	assert.Equal(t, 2, got.WorkDays)
	assert.EqualValues(t, 18, got.TotalHours)
	assert.Equal(t, "18시간 0분", got.TotalWorkTime)
	assert.EqualValues(t, 180000, got.BaseSalary)
	assert.EqualValues(t, 36000, got.WeeklyHolidayPay)
	assert.EqualValues(t, 19224, got.Insurance)
	assert.EqualValues(t, 7128, got.Tax)
	assert.EqualValues(t, 26352, got.Deduction)
	assert.EqualValues(t, 189648, got.NetSalary)
	assert.Equal(t, 15, got.MinWeeklyHours)
	assert.Equal(t, 40, got.WeeklyHours)
}

func TestMonthlyPayroll_IncludesResignedWithRecords(t *testing.T) {
	park := model.User{UID: "u-park", Name: "박하늘", Store: "상동점", HourlyWage: 10000, Status: core.StatusActive}
	e := newTestEnv(park)
	seedShifts(t, e, park.UID, [3]string{"2025-03-03", "09:00", "10:00"})
	_, err := e.employees.Resign(context.Background(), managerSession(), park.UID, &dto.ResignEmployeeDto{ResignDate: "2025-03-10"})
	require.NoError(t, err)

	rows, err := e.payroll.Monthly(context.Background(), &dto.SalaryQueryDto{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 10000, rows[0].BaseSalary)
}

func TestMonthlyPayroll_InvalidRecordOnlyMarksThatEmployee(t *testing.T) {
	park := model.User{UID: "u-park", Name: "박하늘", Store: "상동점", HourlyWage: 10000, Status: core.StatusActive}
	e := newTestEnv(kim, park)
	seedShifts(t, e, park.UID, [3]string{"2025-03-03", "09:00", "17:00"})
	bad := "08:00"
	id := primitive.NewObjectID()
	e.records.records[id] = model.AttendanceRecord{ID: id, UID: kim.UID, Name: kim.Name, Store: kim.Store, Date: "2025-03-03", ClockIn: "09:00", ClockOut: &bad}

	rows, err := e.payroll.Monthly(context.Background(), &dto.SalaryQueryDto{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byUID := map[string]*dto.SalaryResponseDto{}
	for _, r := range rows {
		byUID[r.UID] = r
	}
	require.Contains(t, byUID, park.UID)
	assert.False(t, byUID[park.UID].InvalidRecord)
	assert.EqualValues(t, 8, byUID[park.UID].TotalHours)
	assert.EqualValues(t, 80000, byUID[park.UID].BaseSalary)

	require.Contains(t, byUID, kim.UID)
	assert.True(t, byUID[kim.UID].InvalidRecord)
	assert.Contains(t, byUID[kim.UID].Error, kim.Name)
	assert.Zero(t, byUID[kim.UID].NetSalary)

	// 단건 조회는 그대로 오류
	_, err = e.payroll.ForEmployee(context.Background(), kim.UID, 2025, 3)
	assert.ErrorIs(t, err, cErr.InvalidWorkRecord(""))
}

func TestExportPayroll_MarksInvalidRow(t *testing.T) {
	e := newTestEnv(kim)
	bad := "08:00"
	id := primitive.NewObjectID()
	e.records.records[id] = model.AttendanceRecord{ID: id, UID: kim.UID, Name: kim.Name, Store: kim.Store, Date: "2025-03-03", ClockIn: "09:00", ClockOut: &bad}

	var buf bytes.Buffer
	require.NoError(t, e.payroll.Export(context.Background(), &dto.SalaryQueryDto{Year: 2025, Month: 3}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(payrollSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, kim.Name, rows[2][0])
	assert.Equal(t, "근무 기록 오류", rows[2][3])
}

func TestForEmployee(t *testing.T) {
	e := newTestEnv(kim)
	seedShifts(t, e, kim.UID, [3]string{"2025-03-03", "09:00", "13:30"})

	row, err := e.payroll.ForEmployee(context.Background(), kim.UID, 2025, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 4, row.TotalHours)
	assert.Equal(t, "4시간 30분", row.TotalWorkTime)

	_, err = e.payroll.ForEmployee(context.Background(), "nobody", 2025, 3)
	assert.ErrorIs(t, err, cErr.NotFound(""))
}

func TestExportPayroll(t *testing.T) {
	e := newTestEnv(kim, lee)
	seedShifts(t, e, kim.UID, [3]string{"2025-03-03", "09:00", "18:00"})

	var buf bytes.Buffer
	require.NoError(t, e.payroll.Export(context.Background(), &dto.SalaryQueryDto{Year: 2025, Month: 3}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(payrollSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "2025년 3월 급여", rows[0][0])
	assert.Equal(t, payrollHeader, rows[1])
	assert.Equal(t, []string{lee.Name, lee.Store, "0", "근무 기록 없음"}, rows[2])
	assert.Equal(t, kim.Name, rows[3][0])
	assert.Equal(t, "94824", rows[3][11])
}
