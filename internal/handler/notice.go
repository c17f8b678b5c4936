package handler

import (
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	trace         *telemetry.Trace
	noticeService *service.NoticeService
}

func NewNoticeHandler(trace *telemetry.Trace, noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{trace: trace, noticeService: noticeService}
}

// List 員工最多看到最新 3 筆
// @Summary 공지사항 목록
// @Tags Notice
// @Security BearerAuth
// @Produce json
// @Param limit query int false "최대 개수"
// @Success 200 {array} model.Notice
// @Router /api/v1/notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	limit, err := validate.GetInt64Query(c, "limit", 0)
	if err != nil || limit < 0 {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams("limit must be a non-negative integer"))
		return
	}
	notices, err := h.noticeService.List(ctx, currentSession(c), limit)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, notices)
}

// Create
// @Summary 공지 등록
// @Tags Admin-Notice
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.NoticeDto true "공지"
// @Success 201 {object} model.Notice
// @Router /api/v1/admin/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.NoticeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	notice, err := h.noticeService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, notice)
}

// Update
// @Summary 공지 수정
// @Tags Admin-Notice
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param noticeID path string true "Notice ID"
// @Param body body dto.NoticeDto true "공지"
// @Success 200 {object} model.Notice
// @Router /api/v1/admin/notices/{noticeID} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.NoticeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	notice, err := h.noticeService.Update(ctx, c.Param("noticeID"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, notice)
}

// Delete
// @Summary 공지 삭제
// @Tags Admin-Notice
// @Security BearerAuth
// @Produce json
// @Param noticeID path string true "Notice ID"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/notices/{noticeID} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.noticeService.Delete(ctx, c.Param("noticeID")); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
