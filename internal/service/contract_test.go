package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignature = "data:image/png;base64,iVBORw0KGgo="

func validContractForm() *dto.ContractFormDto {
	return &dto.ContractFormDto{
		EmployeeName:    "김민지",
		EmployeeBirth:   "1999-05-01",
		EmployeeAddress: "경기도 부천시",
		EmployeePhone:   "010-1234-5678",
		CompanyID:       "CO1",
		ContractType:    core.ContractParttime,
		WorkStore:       "상동점",
		StartDate:       "2025-03-01",
		Position:        "스태프",
		WorkDays:        "월,수,금",
		WorkTime:        "09:00-18:00",
		WageType:        core.WageHourly,
		WageAmount:      10030,
		PaymentDay:      "10",
		PaymentMethod:   "계좌이체",
	}
}

func newContractEnv() *testEnv {
	e := newTestEnv()
	e.companies = newFakeCompanies(model.Company{CompanyID: "CO1", Name: "맛남살롱", CEO: "박대표", BusinessNumber: "123-45-67890"})
	e.contractSv.companies = e.companies
	e.at(time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC))
	return e
}

func TestCreateContract_FillsDefaultsAndBuildsLink(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()

	created, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ContractID, "C"))
	assert.Equal(t, e.conf.App.SignBaseURL+"?id="+created.ContractID, created.Link)

	stored, err := e.contractSv.Get(ctx, created.ContractID)
	require.NoError(t, err)
	assert.Equal(t, core.ContractDrafted, stored.Status)
	assert.Equal(t, core.ContractOpenEnded, stored.EndDate)
	assert.Equal(t, "맛남살롱", stored.CompanyName)
	assert.Equal(t, "박대표", stored.CompanyCEO)
	assert.Equal(t, "123-45-67890", stored.CompanyBusinessNumber)
}

func TestCreateContract_RejectsMissingFields(t *testing.T) {
	e := newContractEnv()
	form := validContractForm()
	form.EmployeePhone = ""

	_, err := e.contractSv.Create(context.Background(), managerSession(), form)
	require.Error(t, err)
	assert.ErrorIs(t, err, cErr.ValidateErr(""))
	assert.Contains(t, cErr.From(err).ErrorDesc(), "employeePhone")
}

func TestCreateContract_SameMillisecondGetsNextID(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()

	first, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)
	second, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)
	assert.NotEqual(t, first.ContractID, second.ContractID)
}

func TestSignContract_OnlyOnce(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()
	created, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)

	signed, err := e.contractSv.Sign(ctx, created.ContractID, &dto.SignContractDto{Agree: true, Signature: testSignature})
	require.NoError(t, err)
	assert.True(t, signed.Signed)
	assert.Equal(t, core.ContractSigned, signed.Contract.Status)

	_, err = e.contractSv.Sign(ctx, created.ContractID, &dto.SignContractDto{Agree: true, Signature: "data:image/png;base64,b3RoZXI="})
	assert.ErrorIs(t, err, cErr.AlreadySigned(""))

	stored, err := e.signed.GetByContractID(ctx, created.ContractID)
	require.NoError(t, err)
	assert.Equal(t, testSignature, stored.Signature)
	assert.Contains(t, e.auditSink.actions(), "signContract")
}

func TestSignContract_SignedCopyWinsWhenStatusUpdateLost(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()
	created, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)

	// 副本已寫入但合約狀態仍是 drafted
	require.NoError(t, e.signed.Insert(ctx, &model.SignedContract{ContractID: created.ContractID, Signature: testSignature}))

	view, err := e.contractSv.GetForSigning(ctx, created.ContractID)
	require.NoError(t, err)
	assert.True(t, view.Signed)

	_, err = e.contractSv.Sign(ctx, created.ContractID, &dto.SignContractDto{Agree: true, Signature: testSignature})
	assert.ErrorIs(t, err, cErr.AlreadySigned(""))

	err = e.contractSv.Delete(ctx, managerSession(), created.ContractID)
	assert.ErrorIs(t, err, cErr.Conflict(""))
}

func TestSignContract_Validation(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()
	created, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.SignContractDto
	}{
		{"not agreed", dto.SignContractDto{Agree: false, Signature: testSignature}},
		{"empty signature", dto.SignContractDto{Agree: true}},
		{"not a data url", dto.SignContractDto{Agree: true, Signature: "hello"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.contractSv.Sign(ctx, created.ContractID, &tt.req)
			assert.ErrorIs(t, err, cErr.ValidateErr(""))
		})
	}

	_, err = e.contractSv.Sign(ctx, "C404", &dto.SignContractDto{Agree: true, Signature: testSignature})
	assert.ErrorIs(t, err, cErr.NotFound(""))
}

func TestDeleteContract(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()
	drafted, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)
	e.at(time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC))
	toSign, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)
	_, err = e.contractSv.Sign(ctx, toSign.ContractID, &dto.SignContractDto{Agree: true, Signature: testSignature})
	require.NoError(t, err)

	require.NoError(t, e.contractSv.Delete(ctx, managerSession(), drafted.ContractID))
	assert.ErrorIs(t, e.contractSv.Delete(ctx, managerSession(), toSign.ContractID), cErr.Conflict(""))
	assert.ErrorIs(t, e.contractSv.Delete(ctx, managerSession(), "C404"), cErr.NotFound(""))
}

func TestDeleteContract_SignedWhileDeleting(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()
	created, err := e.contractSv.Create(ctx, managerSession(), validContractForm())
	require.NoError(t, err)

	// 副本寫入後、MarkSigned 之前刪除剛好執行
	e.contracts.beforeDelete = func(contractID string) {
		stored, err := e.contracts.GetByContractID(ctx, contractID)
		require.NoError(t, err)
		require.NoError(t, e.signed.Insert(ctx, &model.SignedContract{
			ContractID: contractID,
			Contract:   *stored,
			Signature:  testSignature,
			SignedAt:   time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC),
		}))
	}

	err = e.contractSv.Delete(ctx, managerSession(), created.ContractID)
	assert.ErrorIs(t, err, cErr.Conflict(""))

	restored, err := e.contracts.GetByContractID(ctx, created.ContractID)
	require.NoError(t, err)
	assert.Equal(t, core.ContractSigned, restored.Status)
	assert.NotNil(t, restored.SignedAt)
	assert.NotContains(t, e.auditSink.actions(), "deleteContract")
}

func TestDrafts_SaveUpdatesExisting(t *testing.T) {
	e := newContractEnv()
	ctx := context.Background()

	draft, err := e.contractSv.SaveDraft(ctx, &dto.SaveDraftDto{ContractFormDto: dto.ContractFormDto{EmployeeName: "김민지"}})
	require.NoError(t, err)
	require.NotEmpty(t, draft.DraftID)

	_, err = e.contractSv.SaveDraft(ctx, &dto.SaveDraftDto{DraftID: draft.DraftID, ContractFormDto: dto.ContractFormDto{EmployeeName: "이서준"}})
	require.NoError(t, err)

	drafts, err := e.contractSv.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "이서준", drafts[0].EmployeeName)

	require.NoError(t, e.contractSv.DeleteDraft(ctx, draft.DraftID))
	assert.ErrorIs(t, e.contractSv.DeleteDraft(ctx, draft.DraftID), cErr.NotFound(""))
}
