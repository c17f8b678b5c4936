package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	trace           *telemetry.Trace
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(trace *telemetry.Trace, scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{trace: trace, scheduleService: scheduleService}
}

// List 員工只會拿到自己的排班
// @Summary 근무 스케줄 조회
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param store query string false "매장"
// @Param uid query string false "Employee UID"
// @Success 200 {array} model.Schedule
// @Router /api/v1/schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.ScheduleQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	schedules, err := h.scheduleService.List(ctx, currentSession(c), &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, schedules)
}

// Add
// @Summary 스케줄 추가
// @Tags Admin-Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ScheduleDto true "스케줄"
// @Success 201 {object} model.Schedule
// @Router /api/v1/admin/schedules [post]
func (h *ScheduleHandler) Add(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.ScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	schedule, err := h.scheduleService.Add(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, schedule)
}

// BulkAdd 任一筆不合法則全部不寫入
// @Summary 스케줄 일괄 추가
// @Tags Admin-Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.BulkScheduleDto true "스케줄 목록"
// @Success 201 {array} model.Schedule
// @Router /api/v1/admin/schedules/bulk [post]
func (h *ScheduleHandler) BulkAdd(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.BulkScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	schedules, err := h.scheduleService.BulkAdd(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, schedules)
}

// Update
// @Summary 스케줄 수정
// @Tags Admin-Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Param body body dto.ScheduleDto true "스케줄"
// @Success 200 {object} model.Schedule
// @Router /api/v1/admin/schedules/{scheduleID} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.ScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	schedule, err := h.scheduleService.Update(ctx, c.Param("scheduleID"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, schedule)
}

// Delete
// @Summary 스케줄 삭제
// @Tags Admin-Schedule
// @Security BearerAuth
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/schedules/{scheduleID} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.scheduleService.Delete(ctx, c.Param("scheduleID")); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
