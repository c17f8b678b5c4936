package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployee_CreatesIdentityAccountFirst(t *testing.T) {
	e := newTestEnv()

	user, err := e.employees.Create(context.Background(), managerSession(), &dto.CreateEmployeeDto{
		Name:       " 박하늘 ",
		Email:      "sky@example.com",
		Password:   "secret1",
		Store:      "상동점",
		HourlyWage: 10030,
	})
	require.NoError(t, err)
	assert.Equal(t, "fb-박하늘", user.UID)
	assert.Equal(t, "박하늘", user.Name)
	assert.Equal(t, core.StatusActive, user.Status)
	assert.Equal(t, core.WageHourly, user.EmploymentType)
	assert.Equal(t, 1, e.identity.created)
}

func TestCreateEmployee_GeneratesUIDWithoutIdentityProvider(t *testing.T) {
	e := newTestEnv()
	e.identity.enabled = false

	user, err := e.employees.Create(context.Background(), managerSession(), &dto.CreateEmployeeDto{Name: "박하늘", Store: "상동점"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UID)
	assert.Zero(t, e.identity.created)
}

func TestResignEmployee_PurgesDocsOnly(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()
	require.NoError(t, e.docs.SaveBankAccount(ctx, kim.UID, model.BankAccount{BankName: "국민", AccountNumber: "123", AccountHolder: kim.Name}))
	_, err := e.attendance.Add(ctx, &dto.AddWorkRecordDto{UID: kim.UID, Date: "2025-03-04", ClockIn: "09:00"})
	require.NoError(t, err)
	require.NoError(t, e.signed.Insert(ctx, &model.SignedContract{ContractID: "C1", Contract: model.Contract{ContractTerms: model.ContractTerms{EmployeeName: kim.Name}}}))

	user, err := e.employees.Resign(ctx, managerSession(), kim.UID, &dto.ResignEmployeeDto{ResignDate: "2025-03-31", Reason: "학업"})
	require.NoError(t, err)
	assert.Equal(t, core.StatusResigned, user.Status)
	assert.Equal(t, "2025-03-31", user.ResignDate)

	_, err = e.docs.GetByUID(ctx, kim.UID)
	assert.Error(t, err)
	records, err := e.records.List(ctx, model.AttendanceFilter{UID: kim.UID})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	signed, err := e.signed.List(ctx, kim.Name)
	require.NoError(t, err)
	assert.Len(t, signed, 1)
	assert.Contains(t, e.auditSink.actions(), "resignEmployee")

	_, err = e.employees.Resign(ctx, managerSession(), kim.UID, &dto.ResignEmployeeDto{ResignDate: "2025-04-01"})
	assert.ErrorIs(t, err, cErr.Conflict(""))
}

func TestResignEmployee_RetryAfterPurgeFailure(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()
	require.NoError(t, e.docs.SaveBankAccount(ctx, kim.UID, model.BankAccount{BankName: "국민", AccountNumber: "123", AccountHolder: kim.Name}))
	e.docs.deleteErr = errors.New("connection reset")
	req := &dto.ResignEmployeeDto{ResignDate: "2025-03-31"}

	_, err := e.employees.Resign(ctx, managerSession(), kim.UID, req)
	assert.ErrorIs(t, err, cErr.DatabaseError(""))
	stored, err := e.users.GetByUID(ctx, kim.UID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusActive, stored.Status)

	user, err := e.employees.Resign(ctx, managerSession(), kim.UID, req)
	require.NoError(t, err)
	assert.Equal(t, core.StatusResigned, user.Status)
	_, err = e.docs.GetByUID(ctx, kim.UID)
	assert.Error(t, err)
}

func TestDeleteEmployee_RemovesIdentityAccountWithoutChangeStream(t *testing.T) {
	e := newTestEnv(kim)
	e.identity.accounts[kim.UID] = core.IdentityUser{UID: kim.UID}
	e.conf.MongoDB.WatchUsers = false

	require.NoError(t, e.employees.Delete(context.Background(), managerSession(), kim.UID))
	assert.NotContains(t, e.identity.accounts, kim.UID)
	assert.ErrorIs(t, e.employees.Delete(context.Background(), managerSession(), kim.UID), cErr.NotFound(""))
}

func TestDeleteEmployee_LeavesIdentityToChangeStream(t *testing.T) {
	e := newTestEnv(kim)
	e.identity.accounts[kim.UID] = core.IdentityUser{UID: kim.UID}
	e.conf.MongoDB.WatchUsers = true

	require.NoError(t, e.employees.Delete(context.Background(), managerSession(), kim.UID))
	assert.Contains(t, e.identity.accounts, kim.UID)
}

func TestUpdateEmployee_PartialFields(t *testing.T) {
	e := newTestEnv(kim)
	wage := int64(11000)

	user, err := e.employees.Update(context.Background(), kim.UID, &dto.UpdateEmployeeDto{HourlyWage: &wage})
	require.NoError(t, err)
	assert.Equal(t, wage, user.HourlyWage)
	assert.Equal(t, kim.Name, user.Name)
}

func TestDocs_HealthCertKeepsPreviousImage(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()
	e.at(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, e.docs.SaveHealthCert(ctx, kim.UID, model.HealthCert{
		ImageData:   []byte{0xff, 0xd8, 0xff},
		ContentType: "image/jpeg",
		ExpiryDate:  "2025-01-31",
	}))

	require.NoError(t, e.docsSv.SaveHealthCert(ctx, employeeSession(kim), kim.UID, &dto.HealthCertDto{ExpiryDate: "2026-01-31"}))

	docs, err := e.docsSv.Get(ctx, employeeSession(kim), kim.UID)
	require.NoError(t, err)
	require.NotNil(t, docs.HealthCert)
	assert.Equal(t, "2026-01-31", docs.HealthCert.ExpiryDate)
	assert.Equal(t, "data:image/jpeg;base64,/9j/", docs.HealthCert.ImageData)
	assert.False(t, docs.HealthCert.Expired)
}

func TestDocs_HealthCertRequiresImageFirstTime(t *testing.T) {
	e := newTestEnv(kim)
	err := e.docsSv.SaveHealthCert(context.Background(), employeeSession(kim), kim.UID, &dto.HealthCertDto{ExpiryDate: "2026-01-31"})
	assert.ErrorIs(t, err, cErr.ValidateErr(""))
}

func TestDocs_EmployeeCannotReadOthers(t *testing.T) {
	e := newTestEnv(kim, lee)
	_, err := e.docsSv.Get(context.Background(), employeeSession(kim), lee.UID)
	assert.ErrorIs(t, err, cErr.Forbidden(""))

	docs, err := e.docsSv.Get(context.Background(), managerSession(), lee.UID)
	require.NoError(t, err)
	assert.Nil(t, docs.BankAccount)
}
