package service

import (
	"context"
	"testing"

	"mannamsalon/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()
	e.users.users[kim.UID] = kim
	e.users.users[lee.UID] = lee
	seedShifts(t, e, kim.UID, [3]string{"2025-03-01", "09:00", "18:00"})
	seedShifts(t, e, lee.UID, [3]string{"2025-03-01", "10:00", ""})
	created, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)
	_, err = e.contractSv.Sign(ctx, created.ContractID, &dto.SignContractDto{Agree: true, Signature: testSignature})
	require.NoError(t, err)

	stats, err := e.dashboard.Stats(ctx, &dto.DashboardQueryDto{})
	require.NoError(t, err)
	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, 3, stats.Month)
	assert.EqualValues(t, 2, stats.ActiveEmployees)
	assert.Equal(t, 2, stats.AttendanceRecords)
	assert.EqualValues(t, 1, stats.ClockedInNow)
	assert.EqualValues(t, 1, stats.SignedContracts)
	assert.Zero(t, stats.DraftedContracts)
	assert.EqualValues(t, 9, stats.TotalHours)
	assert.EqualValues(t, 94824, stats.TotalPayroll)
}
