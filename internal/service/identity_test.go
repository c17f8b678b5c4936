package service

import (
	"context"
	"errors"
	"testing"

	"mannamsalon/internal/core"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnUserDeleted_ToleratesMissingAccount(t *testing.T) {
	e := newTestEnv()
	e.identity.accounts["u-1"] = core.IdentityUser{UID: "u-1"}

	require.NoError(t, e.identitySv.OnUserDeleted(context.Background(), "u-1"))
	assert.Equal(t, []string{"u-1"}, e.identity.deleted)

	// 已經不存在也算成功
	require.NoError(t, e.identitySv.OnUserDeleted(context.Background(), "u-1"))
}

func TestOnUserDeleted_ReportsProviderFailure(t *testing.T) {
	e := newTestEnv()
	e.identity.failOn["u-1"] = errors.New("quota exceeded")

	err := e.identitySv.OnUserDeleted(context.Background(), "u-1")
	assert.ErrorIs(t, err, cErr.IdentityProviderError(""))
}

func TestCleanupOrphans_AggregatesPerItemResults(t *testing.T) {
	e := newTestEnv(kim, lee)
	e.identity = newFakeIdentity(
		core.IdentityUser{UID: kim.UID, Email: "kim@example.com"},
		core.IdentityUser{UID: lee.UID, Email: "lee@example.com"},
		core.IdentityUser{UID: "orphan-a", Email: "a@example.com"},
		core.IdentityUser{UID: "orphan-b", Email: "b@example.com"},
		core.IdentityUser{UID: "orphan-c", Email: "c@example.com"},
	)
	e.identity.failOn["orphan-b"] = errors.New("backend unavailable")
	// 列表之後、刪除之前被別人刪掉
	e.identity.failOn["orphan-c"] = core.ErrIdentityUserNotFound
	e.identitySv.identity = e.identity

	result, err := e.identitySv.CleanupOrphans(context.Background(), "http")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ValidUsers)
	assert.Equal(t, 5, result.TotalAuthUsers)
	assert.Equal(t, 3, result.OrphanedUsers)
	assert.Equal(t, 2, result.DeletedCount)
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Results, 3)

	byUID := map[string]dto.CleanupItemDto{}
	for _, item := range result.Results {
		byUID[item.UID] = item
	}
	assert.Equal(t, dto.CleanupDeleted, byUID["orphan-a"].Status)
	assert.Equal(t, "a@example.com", byUID["orphan-a"].Email)
	assert.Equal(t, dto.CleanupFailed, byUID["orphan-b"].Status)
	assert.Equal(t, "backend unavailable", byUID["orphan-b"].Error)
	assert.Equal(t, dto.CleanupDeleted, byUID["orphan-c"].Status)

	assert.Contains(t, e.identity.accounts, kim.UID)
	assert.Contains(t, e.identity.accounts, lee.UID)
	assert.Contains(t, e.auditSink.actions(), "cleanupOrphanedAuth")
}

func TestCleanupOrphans_NothingToDo(t *testing.T) {
	e := newTestEnv(kim)
	e.identity.accounts[kim.UID] = core.IdentityUser{UID: kim.UID}

	result, err := e.identitySv.CleanupOrphans(context.Background(), "cron")
	require.NoError(t, err)
	assert.Zero(t, result.OrphanedUsers)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, e.auditSink.logs)
}
