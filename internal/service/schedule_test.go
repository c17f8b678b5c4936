package service

import (
	"context"
	"testing"

	"mannamsalon/internal/core"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkAddSchedules_AllOrNothing(t *testing.T) {
	e := newTestEnv(kim, lee)
	ctx := context.Background()

	_, err := e.scheduleSv.BulkAdd(ctx, &dto.BulkScheduleDto{Schedules: []dto.ScheduleDto{
		{UID: kim.UID, Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"},
		{UID: lee.UID, Date: "2025-03-03", StartTime: "18:00", EndTime: "09:00"},
	}})
	assert.ErrorIs(t, err, cErr.ValidateErr(""))
	assert.Empty(t, e.schedules.schedules)

	_, err = e.scheduleSv.BulkAdd(ctx, &dto.BulkScheduleDto{Schedules: []dto.ScheduleDto{
		{UID: kim.UID, Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"},
		{UID: "nobody", Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"},
	}})
	assert.ErrorIs(t, err, cErr.NotFound(""))
	assert.Empty(t, e.schedules.schedules)

	created, err := e.scheduleSv.BulkAdd(ctx, &dto.BulkScheduleDto{Schedules: []dto.ScheduleDto{
		{UID: kim.UID, Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"},
		{UID: lee.UID, Date: "2025-03-03", StartTime: "12:00", EndTime: "21:00", WorkType: core.WorkTypeSubstitute},
	}})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, kim.Store, created[0].Store)
	assert.Equal(t, core.WorkTypeRegular, created[0].WorkType)
	assert.Equal(t, core.WorkTypeSubstitute, created[1].WorkType)
}

func TestListSchedules_EmployeeScopedToSelf(t *testing.T) {
	e := newTestEnv(kim, lee)
	ctx := context.Background()
	_, err := e.scheduleSv.BulkAdd(ctx, &dto.BulkScheduleDto{Schedules: []dto.ScheduleDto{
		{UID: kim.UID, Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"},
		{UID: lee.UID, Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"},
	}})
	require.NoError(t, err)

	own, err := e.scheduleSv.List(ctx, employeeSession(kim), &dto.ScheduleQueryDto{UID: lee.UID})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, kim.UID, own[0].UID)

	all, err := e.scheduleSv.List(ctx, managerSession(), &dto.ScheduleQueryDto{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = e.scheduleSv.List(ctx, nil, &dto.ScheduleQueryDto{})
	assert.ErrorIs(t, err, cErr.InvalidSession(""))
}

func TestUpdateSchedule_ReassignsEmployee(t *testing.T) {
	e := newTestEnv(kim, lee)
	ctx := context.Background()
	s, err := e.scheduleSv.Add(ctx, &dto.ScheduleDto{UID: kim.UID, Date: "2025-03-03", StartTime: "09:00", EndTime: "18:00"})
	require.NoError(t, err)

	updated, err := e.scheduleSv.Update(ctx, s.ID.Hex(), &dto.ScheduleDto{UID: lee.UID, Date: "2025-03-04", StartTime: "10:00", EndTime: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, lee.Name, updated.Name)
	assert.Equal(t, lee.Store, updated.Store)
	assert.Equal(t, core.WorkTypeRegular, updated.WorkType)

	require.NoError(t, e.scheduleSv.Delete(ctx, s.ID.Hex()))
	assert.ErrorIs(t, e.scheduleSv.Delete(ctx, s.ID.Hex()), cErr.NotFound(""))
	assert.ErrorIs(t, e.scheduleSv.Delete(ctx, "bad"), cErr.BadRequestParams(""))
}
