package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/database/mongodb/repository"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.uber.org/zap"
)

type CompanyService struct {
	logger    *zap.Logger
	trace     *telemetry.Trace
	companies CompanyStore
	now       func() time.Time
}

func NewCompanyService(logger *zap.Logger, trace *telemetry.Trace, companies CompanyStore) *CompanyService {
	return &CompanyService{logger: logger, trace: trace, companies: companies, now: time.Now}
}

func (s *CompanyService) Create(ctx context.Context, req *dto.CompanyDto) (*model.Company, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	company := &model.Company{
		CompanyID:      "CO" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:           req.Name,
		CEO:            req.CEO,
		BusinessNumber: req.BusinessNumber,
		Phone:          req.Phone,
		Address:        req.Address,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, cErr.Conflict("company already exists, retry")
		}
		return nil, cErr.DatabaseError("create company: " + err.Error())
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context) ([]*model.Company, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database ListCompanies error")
	}
	if companies == nil {
		companies = []*model.Company{}
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, companyID string) (*model.Company, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	company, err := s.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, storeError(err, "company not found")
	}
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, companyID string, req *dto.CompanyDto) (*model.Company, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	company, err := s.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, storeError(err, "company not found")
	}
	company.Name = req.Name
	company.CEO = req.CEO
	company.BusinessNumber = req.BusinessNumber
	company.Phone = req.Phone
	company.Address = req.Address
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, storeError(err, "company not found")
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, companyID string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.companies.DeleteByCompanyID(ctx, companyID); err != nil {
		return storeError(err, "company not found")
	}
	return nil
}
