package service

import (
	"context"
	"errors"
	"time"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DocsService 員工個資文件（帳戶、保健證）
type DocsService struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	docs   DocsStore
	users  UserStore
	loc    *time.Location
	now    func() time.Time
}

func NewDocsService(logger *zap.Logger, trace *telemetry.Trace, docs DocsStore, users UserStore, loc *time.Location) *DocsService {
	return &DocsService{logger: logger, trace: trace, docs: docs, users: users, loc: loc, now: time.Now}
}

// 員工只能存取自己的文件
func canAccessDocs(session *core.Session, uid string) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if session.IsManager() || session.UID == uid {
		return nil
	}
	return cErr.Forbidden("cannot access another employee's documents")
}

func (s *DocsService) Get(ctx context.Context, session *core.Session, uid string) (*dto.EmployeeDocsResponseDto, error) {
	if err := canAccessDocs(session, uid); err != nil {
		return nil, err
	}
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	out := &dto.EmployeeDocsResponseDto{UID: uid}
	docs, err := s.docs.GetByUID(ctx, uid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, nil
	}
	if err != nil {
		return nil, cErr.DatabaseError(err.Error())
	}
	if b := docs.BankAccount; b != nil {
		out.BankAccount = &dto.BankAccountDto{BankName: b.BankName, AccountNumber: b.AccountNumber, AccountHolder: b.AccountHolder}
	}
	if h := docs.HealthCert; h != nil {
		today := s.now().In(s.loc).Format(dateLayout)
		out.HealthCert = &dto.HealthCertResponseDto{
			ExpiryDate:  h.ExpiryDate,
			ContentType: h.ContentType,
			ImageData:   toDataURL(h.ContentType, h.ImageData),
			UploadedAt:  h.UploadedAt,
			Expired:     h.ExpiryDate < today,
		}
	}
	return out, nil
}

func (s *DocsService) SaveBankAccount(ctx context.Context, session *core.Session, uid string, req *dto.BankAccountDto) error {
	if err := canAccessDocs(session, uid); err != nil {
		return err
	}
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if req.BankName == "" || req.AccountNumber == "" || req.AccountHolder == "" {
		return cErr.ValidateErr("bankName, accountNumber and accountHolder are required")
	}
	if _, err := s.users.GetByUID(ctx, uid); err != nil {
		return storeError(err, "employee not found")
	}
	if err := s.docs.SaveBankAccount(ctx, uid, model.BankAccount{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
	}); err != nil {
		return cErr.DatabaseError(err.Error())
	}
	return nil
}

// SaveHealthCert 未附圖片時沿用先前上傳的圖片
func (s *DocsService) SaveHealthCert(ctx context.Context, session *core.Session, uid string, req *dto.HealthCertDto) error {
	if err := canAccessDocs(session, uid); err != nil {
		return err
	}
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := time.Parse(dateLayout, req.ExpiryDate); err != nil {
		return cErr.ValidateErr("expiryDate must be YYYY-MM-DD")
	}
	if _, err := s.users.GetByUID(ctx, uid); err != nil {
		return storeError(err, "employee not found")
	}

	cert := model.HealthCert{ExpiryDate: req.ExpiryDate, UploadedAt: s.now().UTC()}
	if req.ImageData != "" {
		raw, err := decodeDataURL(req.ImageData)
		if err != nil {
			return cErr.ValidateErr(err.Error())
		}
		compressed, err := compressImage(raw)
		if err != nil {
			return cErr.ValidateErr(err.Error())
		}
		s.logger.Info("health cert image compressed",
			zap.String("uid", uid),
			zap.Int("originalBytes", len(raw)),
			zap.Int("storedBytes", len(compressed)),
		)
		cert.ImageData = compressed
		cert.ContentType = "image/jpeg"
	} else {
		existing, err := s.docs.GetByUID(ctx, uid)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.DatabaseError(err.Error())
		}
		if existing == nil || existing.HealthCert == nil || len(existing.HealthCert.ImageData) == 0 {
			return cErr.ValidateErr("imageData is required")
		}
		cert.ImageData = existing.HealthCert.ImageData
		cert.ContentType = existing.HealthCert.ContentType
		cert.UploadedAt = existing.HealthCert.UploadedAt
	}
	if err := s.docs.SaveHealthCert(ctx, uid, cert); err != nil {
		return cErr.DatabaseError(err.Error())
	}
	return nil
}
