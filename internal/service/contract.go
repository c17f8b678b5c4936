package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/database/mongodb/repository"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const contractIDRetries = 3

type ContractService struct {
	logger    *zap.Logger
	trace     *telemetry.Trace
	metric    *telemetry.Metric
	conf      *config.Configuration
	contracts ContractStore
	signed    SignedContractStore
	drafts    DraftStore
	companies CompanyStore
	audit     *AuditService
	now       func() time.Time
}

func NewContractService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	contracts ContractStore,
	signed SignedContractStore,
	drafts DraftStore,
	companies CompanyStore,
	audit *AuditService,
) *ContractService {
	return &ContractService{
		logger:    logger,
		trace:     trace,
		metric:    metric,
		conf:      conf,
		contracts: contracts,
		signed:    signed,
		drafts:    drafts,
		companies: companies,
		audit:     audit,
		now:       time.Now,
	}
}

// missingContractField 回傳第一個未填的必填欄位
func missingContractField(t model.ContractTerms) string {
	required := []struct {
		name  string
		empty bool
	}{
		{"employeeName", strings.TrimSpace(t.EmployeeName) == ""},
		{"employeeBirth", t.EmployeeBirth == ""},
		{"employeeAddress", t.EmployeeAddress == ""},
		{"employeePhone", t.EmployeePhone == ""},
		{"companyName", t.CompanyName == ""},
		{"contractType", t.ContractType == ""},
		{"workStore", t.WorkStore == ""},
		{"startDate", t.StartDate == ""},
		{"position", t.Position == ""},
		{"wageType", t.WageType == ""},
		{"wageAmount", t.WageAmount <= 0},
		{"paymentDay", t.PaymentDay == ""},
		{"paymentMethod", t.PaymentMethod == ""},
		{"workDays", t.WorkDays == ""},
		{"workTime", t.WorkTime == ""},
	}
	for _, f := range required {
		if f.empty {
			return f.name
		}
	}
	return ""
}

func (s *ContractService) signLink(contractID string) string {
	base := s.conf.App.SignBaseURL
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "id=" + contractID
}

// Create 建立待簽署合約並回傳簽署連結
func (s *ContractService) Create(ctx context.Context, session *core.Session, form *dto.ContractFormDto) (*dto.ContractCreatedDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)

	terms := form.Terms()
	if terms.CompanyID != "" {
		company, err := s.companies.GetByCompanyID(ctx, terms.CompanyID)
		if err != nil {
			appErr := storeError(err, "company not found")
			end(nil)
			return nil, appErr
		}
		if terms.CompanyName == "" {
			terms.CompanyName = company.Name
		}
		if terms.CompanyCEO == "" {
			terms.CompanyCEO = company.CEO
		}
		if terms.CompanyBusinessNumber == "" {
			terms.CompanyBusinessNumber = company.BusinessNumber
		}
	}
	if field := missingContractField(terms); field != "" {
		end(nil)
		return nil, cErr.ValidateErr("required field missing: " + field)
	}
	if terms.EndDate == "" {
		terms.EndDate = core.ContractOpenEnded
	}

	contract := &model.Contract{ContractTerms: terms, Status: core.ContractDrafted}
	millis := s.now().UnixMilli()
	for attempt := 0; ; attempt++ {
		contract.ContractID = "C" + strconv.FormatInt(millis+int64(attempt), 10)
		err := s.contracts.Create(ctx, contract)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicate) && attempt+1 < contractIDRetries {
			continue
		}
		appErr := cErr.DatabaseError("create contract: " + err.Error())
		end(appErr)
		return nil, appErr
	}

	s.audit.Log(ctx, session, "createContract", map[string]any{
		"contractId":   contract.ContractID,
		"employeeName": terms.EmployeeName,
		"workStore":    terms.WorkStore,
	})
	end(nil)
	return &dto.ContractCreatedDto{ContractID: contract.ContractID, Link: s.signLink(contract.ContractID)}, nil
}

// GetForSigning 持有連結即可讀取；簽署副本存在即視為已簽署
func (s *ContractService) GetForSigning(ctx context.Context, contractID string) (*dto.ContractForSigningDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	contract, err := s.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, storeError(err, "contract not found")
	}
	out := &dto.ContractForSigningDto{Contract: contract}
	if contract.Status == core.ContractSigned {
		out.Signed = true
		out.SignedAt = contract.SignedAt
		return out, nil
	}
	signed, err := s.signed.GetByContractID(ctx, contractID)
	switch {
	case err == nil:
		out.Signed = true
		out.SignedAt = &signed.SignedAt
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, cErr.DatabaseError(err.Error())
	}
	return out, nil
}

// Sign 簽署副本以 contractId 唯一索引寫入，只會成功一次；之後才更新合約狀態
func (s *ContractService) Sign(ctx context.Context, contractID string, req *dto.SignContractDto) (*dto.ContractForSigningDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)

	if !req.Agree {
		end(nil)
		return nil, cErr.ValidateErr("agreement is required")
	}
	if !strings.HasPrefix(req.Signature, "data:image/") {
		end(nil)
		return nil, cErr.ValidateErr("signature is required")
	}
	contract, err := s.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		appErr := storeError(err, "contract not found")
		end(nil)
		return nil, appErr
	}
	if contract.Status == core.ContractSigned {
		end(nil)
		return nil, cErr.AlreadySigned("contract already signed")
	}

	signedAt := s.now().UTC()
	snapshot := *contract
	snapshot.Status = core.ContractSigned
	snapshot.SignedAt = &signedAt
	if err := s.signed.Insert(ctx, &model.SignedContract{
		ContractID: contractID,
		Contract:   snapshot,
		Signature:  req.Signature,
		SignedAt:   signedAt,
		Status:     core.ContractSigned,
	}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			end(nil)
			return nil, cErr.AlreadySigned("contract already signed")
		}
		appErr := cErr.DatabaseError("sign contract: " + err.Error())
		end(appErr)
		return nil, appErr
	}
	if _, err := s.contracts.MarkSigned(ctx, contractID, signedAt); err != nil {
		// 簽署副本已寫入，狀態讀取時以副本為準
		s.logger.Warn("mark contract signed failed", zap.String("contractId", contractID), zap.Error(err))
	}
	if s.metric.ContractSignedTotal != nil {
		s.metric.ContractSignedTotal.Inc()
	}
	s.audit.Log(ctx, &core.Session{Role: core.RoleEmployee, Name: contract.EmployeeName}, "signContract", map[string]any{
		"contractId": contractID,
	})
	end(nil)
	return &dto.ContractForSigningDto{Contract: &snapshot, Signed: true, SignedAt: &signedAt}, nil
}

func (s *ContractService) List(ctx context.Context, query *dto.ContractQueryDto) ([]*model.Contract, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	contracts, err := s.contracts.List(ctx, model.ContractFilter{
		Status:       query.Status,
		EmployeeName: query.Name,
		WorkStore:    query.Store,
	})
	if err != nil {
		return nil, cErr.DatabaseError("database ListContracts error")
	}
	if contracts == nil {
		contracts = []*model.Contract{}
	}
	return contracts, nil
}

func (s *ContractService) Get(ctx context.Context, contractID string) (*model.Contract, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	contract, err := s.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, storeError(err, "contract not found")
	}
	return contract, nil
}

func (s *ContractService) ListSigned(ctx context.Context, employeeName string) ([]*model.SignedContract, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	signed, err := s.signed.List(ctx, employeeName)
	if err != nil {
		return nil, cErr.DatabaseError("database ListSignedContracts error")
	}
	if signed == nil {
		signed = []*model.SignedContract{}
	}
	return signed, nil
}

// Delete 已簽署的合約不可刪除
func (s *ContractService) Delete(ctx context.Context, session *core.Session, contractID string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.signed.GetByContractID(ctx, contractID); err == nil {
		return cErr.Conflict("signed contract cannot be deleted")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return cErr.DatabaseError(err.Error())
	}
	deleted, err := s.contracts.DeleteDrafted(ctx, contractID)
	if err != nil {
		return cErr.DatabaseError(err.Error())
	}
	if !deleted {
		if _, err := s.contracts.GetByContractID(ctx, contractID); err != nil {
			return storeError(err, "contract not found")
		}
		return cErr.Conflict("signed contract cannot be deleted")
	}
	// 檢查與刪除之間可能剛好完成簽署；有副本就以副本還原合約
	if signed, err := s.signed.GetByContractID(ctx, contractID); err == nil {
		restored := signed.Contract
		restored.Status = core.ContractSigned
		if restored.SignedAt == nil {
			restored.SignedAt = &signed.SignedAt
		}
		if err := s.contracts.Create(ctx, &restored); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			s.logger.Error("restore signed contract failed", zap.String("contractId", contractID), zap.Error(err))
		}
		return cErr.Conflict("signed contract cannot be deleted")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Warn("recheck signed copy failed", zap.String("contractId", contractID), zap.Error(err))
	}
	s.audit.Log(ctx, session, "deleteContract", map[string]any{"contractId": contractID})
	return nil
}

// SaveDraft 草稿不檢查必填；未帶 id 時新建
func (s *ContractService) SaveDraft(ctx context.Context, req *dto.SaveDraftDto) (*model.ContractDraft, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	draftID := req.DraftID
	if draftID == "" {
		draftID = "D" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	draft := &model.ContractDraft{DraftID: draftID, ContractTerms: req.Terms()}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, cErr.DatabaseError("save draft: " + err.Error())
	}
	return draft, nil
}

func (s *ContractService) ListDrafts(ctx context.Context) ([]*model.ContractDraft, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	drafts, err := s.drafts.List(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database ListDrafts error")
	}
	if drafts == nil {
		drafts = []*model.ContractDraft{}
	}
	return drafts, nil
}

func (s *ContractService) GetDraft(ctx context.Context, draftID string) (*model.ContractDraft, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	draft, err := s.drafts.GetByDraftID(ctx, draftID)
	if err != nil {
		return nil, storeError(err, "draft not found")
	}
	return draft, nil
}

func (s *ContractService) DeleteDraft(ctx context.Context, draftID string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.drafts.DeleteByDraftID(ctx, draftID); err != nil {
		return storeError(err, "draft not found")
	}
	return nil
}
