package service

import (
	"context"
	"errors"
	"strings"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/database/mongodb/repository"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EmployeeService struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	conf     *config.Configuration
	users    UserStore
	docs     DocsStore
	identity IdentityProvider
	cleanup  *IdentityService
	audit    *AuditService
}

func NewEmployeeService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	conf *config.Configuration,
	users UserStore,
	docs DocsStore,
	identity IdentityProvider,
	cleanup *IdentityService,
	audit *AuditService,
) *EmployeeService {
	return &EmployeeService{
		logger:   logger,
		trace:    trace,
		conf:     conf,
		users:    users,
		docs:     docs,
		identity: identity,
		cleanup:  cleanup,
		audit:    audit,
	}
}

func (s *EmployeeService) List(ctx context.Context, query *dto.EmployeeQueryDto) ([]*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	users, err := s.users.List(ctx, model.UserFilter{Store: query.Store, Status: query.Status, Name: query.Name})
	if err != nil {
		return nil, cErr.DatabaseError("database ListUsers error")
	}
	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

func (s *EmployeeService) Get(ctx context.Context, uid string) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, storeError(err, "employee not found")
	}
	return user, nil
}

// Create 身份服務啟用時先建立帳號，以其 uid 作為文件 _id
func (s *EmployeeService) Create(ctx context.Context, session *core.Session, req *dto.CreateEmployeeDto) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)

	name := strings.TrimSpace(req.Name)
	uid := ""
	if s.identity.Enabled() && req.Email != "" {
		if req.Password == "" {
			end(nil)
			return nil, cErr.ValidateErr("password is required when email is given")
		}
		created, err := s.identity.CreateUser(ctx, req.Email, req.Password, name)
		if err != nil {
			appErr := cErr.IdentityProviderError(err.Error())
			end(appErr)
			return nil, appErr
		}
		uid = created
	} else {
		uid = uuid.NewString()
	}

	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = core.WageHourly
	}
	user, err := s.users.Create(ctx, &model.User{
		UID:            uid,
		Name:           name,
		Email:          req.Email,
		Phone:          req.Phone,
		Birth:          req.Birth,
		Address:        req.Address,
		Store:          req.Store,
		Position:       req.Position,
		EmploymentType: employmentType,
		HourlyWage:     req.HourlyWage,
		Status:         core.StatusActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			end(nil)
			return nil, cErr.Conflict("employee already exists")
		}
		appErr := cErr.DatabaseError("database CreateUser error")
		end(appErr)
		return nil, appErr
	}
	s.audit.Log(ctx, session, "addEmployee", map[string]any{"uid": uid, "name": user.Name, "store": user.Store})
	end(nil)
	return user, nil
}

func (s *EmployeeService) Update(ctx context.Context, uid string, req *dto.UpdateEmployeeDto) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, storeError(err, "employee not found")
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Birth != nil {
		user.Birth = *req.Birth
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Store != nil {
		user.Store = *req.Store
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.EmploymentType != nil {
		user.EmploymentType = *req.EmploymentType
	}
	if req.HourlyWage != nil {
		user.HourlyWage = *req.HourlyWage
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, storeError(err, "employee not found")
	}
	return user, nil
}

// Resign 標記離職並刪除個資文件；合約與出勤紀錄保留
func (s *EmployeeService) Resign(ctx context.Context, session *core.Session, uid string, req *dto.ResignEmployeeDto) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)

	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		appErr := storeError(err, "employee not found")
		end(nil)
		return nil, appErr
	}
	if user.Status == core.StatusResigned {
		end(nil)
		return nil, cErr.Conflict("employee already resigned")
	}
	// 先刪個資文件；失敗時狀態不變，可直接重試
	purged, err := s.docs.DeleteByUID(ctx, uid)
	if err != nil {
		appErr := cErr.DatabaseError("purge employee docs: " + err.Error())
		end(appErr)
		return nil, appErr
	}
	user.Status = core.StatusResigned
	user.ResignDate = req.ResignDate
	user.ResignReason = req.Reason
	if err := s.users.Update(ctx, user); err != nil {
		appErr := storeError(err, "employee not found")
		end(appErr)
		return nil, appErr
	}
	s.audit.Log(ctx, session, "resignEmployee", map[string]any{
		"uid":        uid,
		"name":       user.Name,
		"resignDate": req.ResignDate,
		"reason":     req.Reason,
		"docsPurged": purged,
	})
	end(nil)
	return user, nil
}

// Delete 刪除 users 文件；change stream 未啟用時同步刪除身份帳號
func (s *EmployeeService) Delete(ctx context.Context, session *core.Session, uid string) error {
	ctx, _, end := s.trace.WithSpan(ctx)

	if err := s.users.DeleteByUID(ctx, uid); err != nil {
		appErr := storeError(err, "employee not found")
		end(nil)
		return appErr
	}
	if _, err := s.docs.DeleteByUID(ctx, uid); err != nil {
		s.logger.Warn("delete employee docs failed", zap.String("uid", uid), zap.Error(err))
	}
	s.audit.Log(ctx, session, "deleteEmployee", map[string]any{"uid": uid})

	if !s.conf.MongoDB.WatchUsers {
		if err := s.cleanup.OnUserDeleted(ctx, uid); err != nil {
			// 文件已刪；留給孤兒帳號清理補上
			s.logger.Warn("identity delete deferred to orphan cleanup", zap.String("uid", uid), zap.Error(err))
		}
	}
	end(nil)
	return nil
}
