package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcCall(e *testEnv, action, token string, params map[string]any) (any, error) {
	raw, _ := json.Marshal(params)
	return e.rpc.Dispatch(context.Background(), &dto.RPCRequestDto{Action: action, Token: token, Params: raw})
}

func rpcLogin(t *testing.T, e *testEnv, name string) string {
	t.Helper()
	data, err := rpcCall(e, "verifyEmployee", "", map[string]any{"name": name})
	require.NoError(t, err)
	return data.(*dto.LoginResponseDto).Token
}

func TestRPC_UnknownAction(t *testing.T) {
	e := newTestEnv()
	_, err := rpcCall(e, "dropDatabase", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cErr.BadRequestParams(""))
	assert.Equal(t, "unknown action: dropDatabase", cErr.From(err).ErrorDesc())
}

func TestRPC_ManagerActionsNeedManagerToken(t *testing.T) {
	e := newTestEnv(kim)
	e.at(time.Now())

	_, err := rpcCall(e, "getAllEmployees", "", nil)
	assert.ErrorIs(t, err, cErr.InvalidSession(""))

	_, err = rpcCall(e, "getAllEmployees", rpcLogin(t, e, kim.Name), nil)
	assert.ErrorIs(t, err, cErr.Forbidden(""))

	withManagerPassword(t, e, "1234")
	data, err := rpcCall(e, "verifyManager", "", map[string]any{"password": "1234"})
	require.NoError(t, err)
	users, err := rpcCall(e, "getAllEmployees", data.(*dto.LoginResponseDto).Token, nil)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRPC_ClockInWithToken(t *testing.T) {
	e := newTestEnv(kim)
	e.at(time.Now())
	token := rpcLogin(t, e, kim.Name)

	data, err := rpcCall(e, "clockIn", token, nil)
	require.NoError(t, err)
	record := data.(*model.AttendanceRecord)
	assert.Equal(t, kim.UID, record.UID)

	_, err = rpcCall(e, "clockIn", token, nil)
	assert.ErrorIs(t, err, cErr.AlreadyClockedIn(""))
}

func TestRPC_EmployeeSeesOnlyOwnRecords(t *testing.T) {
	e := newTestEnv(kim, lee)
	e.at(time.Now())
	seedShifts(t, e, kim.UID, [3]string{"2025-03-03", "09:00", "18:00"})
	seedShifts(t, e, lee.UID, [3]string{"2025-03-03", "10:00", "19:00"})

	data, err := rpcCall(e, "getWorkRecords", rpcLogin(t, e, kim.Name), map[string]any{"employeeId": lee.UID})
	require.NoError(t, err)
	records := data.([]*model.AttendanceRecord)
	require.Len(t, records, 1)
	assert.Equal(t, kim.UID, records[0].UID)
}

func TestRPC_SignContractIsPublic(t *testing.T) {
	e := newContractEnv()
	created, err := e.contractSv.Create(context.Background(), managerSession(), validContractForm())
	require.NoError(t, err)

	_, err = rpcCall(e, "signContract", "", map[string]any{"contractId": created.ContractID, "signatureData": testSignature})
	assert.ErrorIs(t, err, cErr.ValidateErr(""))

	_, err = rpcCall(e, "signContract", "", map[string]any{"contractId": created.ContractID, "signatureData": testSignature, "agree": true})
	require.NoError(t, err)

	data, err := rpcCall(e, "getContract", "", map[string]any{"contractId": created.ContractID})
	require.NoError(t, err)
	assert.True(t, data.(*dto.ContractForSigningDto).Signed)
}

func TestRPC_LogActionWithoutSession(t *testing.T) {
	e := newTestEnv()

	_, err := rpcCall(e, "logAction", "not-a-token", map[string]any{"event": "openSignPage", "details": map[string]any{"contractId": "C1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"openSignPage"}, e.auditSink.actions())

	_, err = rpcCall(e, "logAction", "", map[string]any{})
	assert.ErrorIs(t, err, cErr.ValidateErr(""))
}
