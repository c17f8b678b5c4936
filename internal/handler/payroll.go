package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler struct {
	trace          *telemetry.Trace
	payrollService *service.PayrollService
}

func NewPayrollHandler(trace *telemetry.Trace, payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{trace: trace, payrollService: payrollService}
}

// Monthly 當月全體薪資
// @Summary 월별 급여 계산
// @Tags Admin-Payroll
// @Security BearerAuth
// @Produce json
// @Param year query int true "연도"
// @Param month query int true "월"
// @Param store query string false "매장"
// @Param name query string false "이름"
// @Success 200 {array} dto.SalaryResponseDto
// @Failure 422 {object} response.Response "invalid work record"
// @Router /api/v1/admin/payroll [get]
func (h *PayrollHandler) Monthly(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.SalaryQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	rows, err := h.payrollService.Monthly(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, rows)
}

// MySalary 員工本人的當月薪資
// @Summary 내 급여
// @Tags Payroll
// @Security BearerAuth
// @Produce json
// @Param year query int true "연도"
// @Param month query int true "월"
// @Param employeeId query string false "관리자 전용"
// @Success 200 {object} dto.SalaryResponseDto
// @Router /api/v1/me/salary [get]
func (h *PayrollHandler) MySalary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.SalaryQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	// 管理者可用 employeeId 查任一員工
	uid := currentSession(c).UID
	if currentSession(c).IsManager() {
		uid = c.Query("employeeId")
	}
	if uid == "" {
		response.AbortWithError(c, cErr.BadRequestParams("employeeId is required"))
		return
	}
	row, err := h.payrollService.ForEmployee(ctx, uid, query.Year, query.Month)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, row)
}

// Export 下載 xlsx
// @Summary 급여 엑셀 다운로드
// @Tags Admin-Payroll
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int true "연도"
// @Param month query int true "월"
// @Param store query string false "매장"
// @Success 200 {file} file
// @Router /api/v1/admin/payroll/export [get]
func (h *PayrollHandler) Export(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.SalaryQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	// 先寫進 buffer，失敗時仍能回傳 JSON 錯誤
	var buf bytes.Buffer
	if err := h.payrollService.Export(ctx, &query, &buf); err != nil {
		response.AbortWithError(c, err)
		return
	}
	filename := fmt.Sprintf("급여_%d-%02d.xlsx", query.Year, query.Month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll-%d-%02d.xlsx"; filename*=UTF-8''%s`,
		query.Year, query.Month, url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	c.Abort()
}
