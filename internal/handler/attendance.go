package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	trace             *telemetry.Trace
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(trace *telemetry.Trace, attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{trace: trace, attendanceService: attendanceService}
}

// ClockIn 出勤
// @Summary 출근
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Success 201 {object} model.AttendanceRecord
// @Failure 409 {object} response.Response "already clocked in"
// @Router /api/v1/me/attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	record, err := h.attendanceService.ClockIn(ctx, currentSession(c))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, record)
}

// ClockOut 退勤
// @Summary 퇴근
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.AttendanceRecord
// @Failure 409 {object} response.Response "not clocked in / already clocked out"
// @Router /api/v1/me/attendance/clock-out [post]
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	record, err := h.attendanceService.ClockOut(ctx, currentSession(c))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, record)
}

// Today 今日紀錄，尚未打卡時 data 為 null
// @Summary 오늘 출퇴근 기록
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.AttendanceRecord
// @Router /api/v1/me/attendance/today [get]
func (h *AttendanceHandler) Today(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	record, err := h.attendanceService.Today(ctx, currentSession(c))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	if record == nil {
		response.Success(c, gin.H{"message": "not clocked in today", "record": nil})
		return
	}
	response.Success(c, record)
}

// MyRecords 員工本人的出勤紀錄
// @Summary 내 근무 기록
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} model.AttendanceRecord
// @Router /api/v1/me/records [get]
func (h *AttendanceHandler) MyRecords(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.WorkRecordQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	session := currentSession(c)
	query.UID, query.Name, query.Store = session.UID, "", ""
	records, err := h.attendanceService.List(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, records)
}

// List 出勤紀錄查詢
// @Summary 근무 기록 조회
// @Tags Admin-Attendance
// @Security BearerAuth
// @Produce json
// @Param uid query string false "Employee UID"
// @Param name query string false "이름"
// @Param store query string false "매장"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} model.AttendanceRecord
// @Router /api/v1/admin/records [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.WorkRecordQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	records, err := h.attendanceService.List(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, records)
}

// Add 補登
// @Summary 근무 기록 추가
// @Tags Admin-Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.AddWorkRecordDto true "근무 기록"
// @Success 201 {object} model.AttendanceRecord
// @Failure 409 {object} response.Response
// @Router /api/v1/admin/records [post]
func (h *AttendanceHandler) Add(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.AddWorkRecordDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	record, err := h.attendanceService.Add(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, record)
}

// Update clockOut 傳空字串代表清除
// @Summary 근무 기록 수정
// @Tags Admin-Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param body body dto.UpdateWorkRecordDto true "수정할 항목"
// @Success 200 {object} model.AttendanceRecord
// @Router /api/v1/admin/records/{recordID} [patch]
func (h *AttendanceHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.UpdateWorkRecordDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	record, err := h.attendanceService.Update(ctx, c.Param("recordID"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, record)
}

// Delete
// @Summary 근무 기록 삭제
// @Tags Admin-Attendance
// @Security BearerAuth
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/records/{recordID} [delete]
func (h *AttendanceHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.attendanceService.Delete(ctx, c.Param("recordID")); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}

// Confirm 單筆或批次確認
// @Summary 근무 기록 확정
// @Tags Admin-Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ConfirmRecordsDto true "확정할 기록"
// @Success 200 {object} dto.ConfirmResultDto
// @Router /api/v1/admin/records/confirm [post]
func (h *AttendanceHandler) Confirm(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.ConfirmRecordsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	result, err := h.attendanceService.Confirm(ctx, req.RecordIDs)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
