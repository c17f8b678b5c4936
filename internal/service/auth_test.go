package service

import (
	"context"
	"testing"
	"time"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func withManagerPassword(t *testing.T, e *testEnv, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	e.conf.Manager.PasswordHash = string(hash)
}

func TestVerifyManager(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	_, err := e.auth.VerifyManager(ctx, &dto.VerifyManagerDto{Password: "1234"})
	assert.ErrorIs(t, err, cErr.ConfigurationError(""))

	withManagerPassword(t, e, "1234")
	_, err = e.auth.VerifyManager(ctx, &dto.VerifyManagerDto{Password: "wrong"})
	assert.ErrorIs(t, err, cErr.Unauthorized(""))

	resp, err := e.auth.VerifyManager(ctx, &dto.VerifyManagerDto{Password: "1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, core.RoleManager, resp.Session.Role)

	session, err := e.auth.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.True(t, session.IsManager())
}

func TestVerifyEmployee(t *testing.T) {
	resigned := model.User{UID: "u-old", Name: "최예린", Store: "상동점", Status: core.StatusResigned}
	e := newTestEnv(kim, resigned)
	ctx := context.Background()

	resp, err := e.auth.VerifyEmployee(ctx, &dto.VerifyEmployeeDto{Name: kim.Name})
	require.NoError(t, err)
	assert.Equal(t, kim.UID, resp.Session.UID)
	assert.Equal(t, kim.Store, resp.Session.Store)

	_, err = e.auth.VerifyEmployee(ctx, &dto.VerifyEmployeeDto{Name: resigned.Name})
	assert.ErrorIs(t, err, cErr.Unauthorized(""))
	_, err = e.auth.VerifyEmployee(ctx, &dto.VerifyEmployeeDto{Name: "없는사람"})
	assert.ErrorIs(t, err, cErr.Unauthorized(""))
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()
	e.at(time.Now())

	resp, err := e.auth.VerifyEmployee(ctx, &dto.VerifyEmployeeDto{Name: kim.Name})
	require.NoError(t, err)

	_, err = e.auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, cErr.InvalidSession(""))
	_, err = e.auth.Authenticate(ctx, resp.Token+"x")
	assert.ErrorIs(t, err, cErr.InvalidSession(""))

	other := newTestEnv(kim)
	other.conf.Session.JWTSecret = "another-secret"
	_, err = other.auth.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, cErr.InvalidSession(""))
}

func TestLogout_InvalidatesSession(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()
	e.at(time.Now())

	resp, err := e.auth.VerifyEmployee(ctx, &dto.VerifyEmployeeDto{Name: kim.Name})
	require.NoError(t, err)
	require.NoError(t, e.auth.Logout(ctx, resp.Session))

	_, err = e.auth.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, cErr.InvalidSession(""))
	assert.ErrorIs(t, e.auth.Logout(ctx, nil), cErr.InvalidSession(""))
}
