package service

import (
	"context"
	"encoding/json"

	"mannamsalon/internal/core"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"go.uber.org/zap"
)

type rpcAccess int

const (
	rpcPublic   rpcAccess = iota // 不需 token
	rpcOptional                  // 有 token 就解析
	rpcSession                   // 任一角色
	rpcEmployee                  // 員工本人
	rpcManager                   // 管理者
)

type rpcFunc func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error)

type rpcRoute struct {
	access rpcAccess
	fn     rpcFunc
}

type rpcIDs struct {
	EmployeeID string   `json:"employeeId"`
	RecordID   string   `json:"recordId"`
	RecordIDs  []string `json:"recordIds"`
	ScheduleID string   `json:"scheduleId"`
	ContractID string   `json:"contractId"`
}

type rpcSignParams struct {
	ContractID    string `json:"contractId"`
	SignatureData string `json:"signatureData"`
	Signature     string `json:"signature"`
	Agree         bool   `json:"agree"`
}

type rpcMySalaryParams struct {
	EmployeeID string `json:"employeeId"`
	Year       int    `json:"year" binding:"required,gte=2000,lte=2100"`
	Month      int    `json:"month" binding:"required,gte=1,lte=12"`
}

// RPCService {action, ...params} 相容端點的分派
type RPCService struct {
	logger     *zap.Logger
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	auth       *AuthService
	employees  *EmployeeService
	attendance *AttendanceService
	payroll    *PayrollService
	contracts  *ContractService
	schedules  *ScheduleService
	dashboard  *DashboardService
	audit      *AuditService
	routes     map[string]rpcRoute
}

func NewRPCService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	auth *AuthService,
	employees *EmployeeService,
	attendance *AttendanceService,
	payroll *PayrollService,
	contracts *ContractService,
	schedules *ScheduleService,
	dashboard *DashboardService,
	audit *AuditService,
) *RPCService {
	s := &RPCService{
		logger:     logger,
		trace:      trace,
		metric:     metric,
		auth:       auth,
		employees:  employees,
		attendance: attendance,
		payroll:    payroll,
		contracts:  contracts,
		schedules:  schedules,
		dashboard:  dashboard,
		audit:      audit,
	}
	s.routes = s.buildRoutes()
	return s
}

// Dispatch 未知 action 回傳 "unknown action: <name>"
func (s *RPCService) Dispatch(ctx context.Context, req *dto.RPCRequestDto) (any, error) {
	ctx, _, end := s.trace.WithSpan(ctx)

	route, ok := s.routes[req.Action]
	if !ok {
		s.count("unknown", "rejected")
		end(nil)
		return nil, cErr.BadRequestParams("unknown action: " + req.Action)
	}
	session, err := s.resolve(ctx, route.access, req.Token)
	if err != nil {
		s.count(req.Action, "rejected")
		end(nil)
		return nil, err
	}
	data, err := route.fn(ctx, session, req.Params)
	if err != nil {
		s.count(req.Action, "error")
		s.logger.Info("rpc failed", zap.String("action", req.Action), zap.Error(err))
		end(nil)
		return nil, err
	}
	s.count(req.Action, "ok")
	end(nil)
	return data, nil
}

func (s *RPCService) resolve(ctx context.Context, access rpcAccess, token string) (*core.Session, error) {
	switch access {
	case rpcPublic:
		return nil, nil
	case rpcOptional:
		if token == "" {
			return nil, nil
		}
		session, err := s.auth.Authenticate(ctx, token)
		if err != nil {
			return nil, nil
		}
		return session, nil
	}
	session, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	switch access {
	case rpcManager:
		return session, requireManager(session)
	case rpcEmployee:
		return session, requireEmployee(session)
	}
	return session, nil
}

func (s *RPCService) count(action, status string) {
	if s.metric.RPCCallsTotal != nil {
		s.metric.RPCCallsTotal.WithLabelValues(action, status).Inc()
	}
}

func decodeParams[T any](raw json.RawMessage) (*T, error) {
	req := new(T)
	if _, err := validate.DecodeAndValidate(raw, req); err != nil {
		return nil, err
	}
	return req, nil
}

func decodeIDs(raw json.RawMessage) rpcIDs {
	var ids rpcIDs
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &ids)
	}
	return ids
}

func requireID(value, name string) error {
	if value == "" {
		return cErr.ValidateErr(name + " is required")
	}
	return nil
}

func (s *RPCService) buildRoutes() map[string]rpcRoute {
	return map[string]rpcRoute{
		"verifyManager": {rpcPublic, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.VerifyManagerDto](raw)
			if err != nil {
				return nil, err
			}
			return s.auth.VerifyManager(ctx, req)
		}},
		"verifyEmployee": {rpcPublic, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.VerifyEmployeeDto](raw)
			if err != nil {
				return nil, err
			}
			return s.auth.VerifyEmployee(ctx, req)
		}},

		"getAllEmployees": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.EmployeeQueryDto](raw)
			if err != nil {
				return nil, err
			}
			return s.employees.List(ctx, req)
		}},
		"getEmployee": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.EmployeeID, "employeeId"); err != nil {
				return nil, err
			}
			return s.employees.Get(ctx, ids.EmployeeID)
		}},
		"addEmployee": {rpcManager, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.CreateEmployeeDto](raw)
			if err != nil {
				return nil, err
			}
			return s.employees.Create(ctx, session, req)
		}},
		"updateEmployee": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.EmployeeID, "employeeId"); err != nil {
				return nil, err
			}
			req, err := decodeParams[dto.UpdateEmployeeDto](raw)
			if err != nil {
				return nil, err
			}
			return s.employees.Update(ctx, ids.EmployeeID, req)
		}},
		"resignEmployee": {rpcManager, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.EmployeeID, "employeeId"); err != nil {
				return nil, err
			}
			req, err := decodeParams[dto.ResignEmployeeDto](raw)
			if err != nil {
				return nil, err
			}
			return s.employees.Resign(ctx, session, ids.EmployeeID, req)
		}},

		"getSchedules": {rpcSession, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.ScheduleQueryDto](raw)
			if err != nil {
				return nil, err
			}
			return s.schedules.List(ctx, session, req)
		}},
		"addSchedule": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.ScheduleDto](raw)
			if err != nil {
				return nil, err
			}
			return s.schedules.Add(ctx, req)
		}},
		"updateSchedule": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.ScheduleID, "scheduleId"); err != nil {
				return nil, err
			}
			req, err := decodeParams[dto.ScheduleDto](raw)
			if err != nil {
				return nil, err
			}
			return s.schedules.Update(ctx, ids.ScheduleID, req)
		}},
		"deleteSchedule": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.ScheduleID, "scheduleId"); err != nil {
				return nil, err
			}
			return nil, s.schedules.Delete(ctx, ids.ScheduleID)
		}},
		"bulkAddSchedules": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.BulkScheduleDto](raw)
			if err != nil {
				return nil, err
			}
			return s.schedules.BulkAdd(ctx, req)
		}},

		"clockIn": {rpcEmployee, func(ctx context.Context, session *core.Session, _ json.RawMessage) (any, error) {
			return s.attendance.ClockIn(ctx, session)
		}},
		"clockOut": {rpcEmployee, func(ctx context.Context, session *core.Session, _ json.RawMessage) (any, error) {
			return s.attendance.ClockOut(ctx, session)
		}},
		"getWorkRecords": {rpcSession, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.WorkRecordQueryDto](raw)
			if err != nil {
				return nil, err
			}
			if !session.IsManager() {
				req.UID, req.Name = session.UID, ""
			}
			return s.attendance.List(ctx, req)
		}},
		"addWorkRecord": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.AddWorkRecordDto](raw)
			if err != nil {
				return nil, err
			}
			return s.attendance.Add(ctx, req)
		}},
		"updateWorkRecord": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.RecordID, "recordId"); err != nil {
				return nil, err
			}
			req, err := decodeParams[dto.UpdateWorkRecordDto](raw)
			if err != nil {
				return nil, err
			}
			return s.attendance.Update(ctx, ids.RecordID, req)
		}},
		"deleteWorkRecord": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.RecordID, "recordId"); err != nil {
				return nil, err
			}
			return nil, s.attendance.Delete(ctx, ids.RecordID)
		}},
		"confirmWorkRecord": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.RecordID, "recordId"); err != nil {
				return nil, err
			}
			return s.attendance.Confirm(ctx, []string{ids.RecordID})
		}},
		"bulkConfirmWorkRecords": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.ConfirmRecordsDto](raw)
			if err != nil {
				return nil, err
			}
			return s.attendance.Confirm(ctx, req.RecordIDs)
		}},

		"calculateSalary": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.SalaryQueryDto](raw)
			if err != nil {
				return nil, err
			}
			return s.payroll.Monthly(ctx, req)
		}},
		"getMySalary": {rpcSession, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[rpcMySalaryParams](raw)
			if err != nil {
				return nil, err
			}
			uid := session.UID
			if session.IsManager() {
				uid = req.EmployeeID
			}
			if err := requireID(uid, "employeeId"); err != nil {
				return nil, err
			}
			return s.payroll.ForEmployee(ctx, uid, req.Year, req.Month)
		}},

		"createContract": {rpcManager, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.ContractFormDto](raw)
			if err != nil {
				return nil, err
			}
			return s.contracts.Create(ctx, session, req)
		}},
		"getContracts": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.ContractQueryDto](raw)
			if err != nil {
				return nil, err
			}
			return s.contracts.List(ctx, req)
		}},
		// 持有簽署連結即可讀取
		"getContract": {rpcPublic, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.ContractID, "contractId"); err != nil {
				return nil, err
			}
			return s.contracts.GetForSigning(ctx, ids.ContractID)
		}},
		"signContract": {rpcPublic, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[rpcSignParams](raw)
			if err != nil {
				return nil, err
			}
			if err := requireID(req.ContractID, "contractId"); err != nil {
				return nil, err
			}
			signature := req.SignatureData
			if signature == "" {
				signature = req.Signature
			}
			return s.contracts.Sign(ctx, req.ContractID, &dto.SignContractDto{Agree: req.Agree, Signature: signature})
		}},
		"deleteContract": {rpcManager, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			ids := decodeIDs(raw)
			if err := requireID(ids.ContractID, "contractId"); err != nil {
				return nil, err
			}
			return nil, s.contracts.Delete(ctx, session, ids.ContractID)
		}},

		"getDashboardStats": {rpcManager, func(ctx context.Context, _ *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.DashboardQueryDto](raw)
			if err != nil {
				return nil, err
			}
			return s.dashboard.Stats(ctx, req)
		}},
		"logAction": {rpcOptional, func(ctx context.Context, session *core.Session, raw json.RawMessage) (any, error) {
			req, err := decodeParams[dto.LogActionDto](raw)
			if err != nil {
				return nil, err
			}
			s.audit.Log(ctx, session, req.Event, req.Details)
			return nil, nil
		}},
	}
}
