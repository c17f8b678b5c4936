package service

import (
	"context"
	"strings"

	"mannamsalon/internal/core"
	"mannamsalon/internal/database/mongodb/model"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"go.uber.org/zap"
)

type NoticeService struct {
	logger  *zap.Logger
	trace   *telemetry.Trace
	notices NoticeStore
}

func NewNoticeService(logger *zap.Logger, trace *telemetry.Trace, notices NoticeStore) *NoticeService {
	return &NoticeService{logger: logger, trace: trace, notices: notices}
}

// List 最新在前；員工端最多 EmployeeNoticeLimit 筆，limit <= 0 表示全部
func (s *NoticeService) List(ctx context.Context, session *core.Session, limit int64) ([]*model.Notice, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !session.IsManager() && (limit <= 0 || limit > core.EmployeeNoticeLimit) {
		limit = core.EmployeeNoticeLimit
	}
	notices, err := s.notices.List(ctx, limit)
	if err != nil {
		return nil, cErr.DatabaseError("database ListNotices error")
	}
	if notices == nil {
		notices = []*model.Notice{}
	}
	return notices, nil
}

func (s *NoticeService) Create(ctx context.Context, req *dto.NoticeDto) (*model.Notice, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if strings.TrimSpace(req.Content) == "" {
		return nil, cErr.ValidateErr("content is required")
	}
	notice := &model.Notice{
		Title:     noticeTitle(req.Title),
		Content:   req.Content,
		Important: req.Important,
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, cErr.DatabaseError("create notice: " + err.Error())
	}
	return notice, nil
}

func (s *NoticeService) Update(ctx context.Context, id string, req *dto.NoticeDto) (*model.Notice, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oid, err := parseObjectID(id, "noticeId")
	if err != nil {
		return nil, err
	}
	notice, err := s.notices.GetByID(ctx, oid)
	if err != nil {
		return nil, storeError(err, "notice not found")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, cErr.ValidateErr("content is required")
	}
	notice.Title = noticeTitle(req.Title)
	notice.Content = req.Content
	notice.Important = req.Important
	if err := s.notices.Update(ctx, notice); err != nil {
		return nil, storeError(err, "notice not found")
	}
	return notice, nil
}

func (s *NoticeService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	oid, err := parseObjectID(id, "noticeId")
	if err != nil {
		return err
	}
	if err := s.notices.DeleteByID(ctx, oid); err != nil {
		return storeError(err, "notice not found")
	}
	return nil
}

func noticeTitle(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return core.DefaultNoticeTitle
}
