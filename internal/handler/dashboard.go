package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
}

func NewDashboardHandler(trace *telemetry.Trace, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{trace: trace, dashboardService: dashboardService}
}

// Stats 未指定年月時以本月計算
// @Summary 대시보드 통계
// @Tags Admin-Dashboard
// @Security BearerAuth
// @Produce json
// @Param year query int false "연도"
// @Param month query int false "월"
// @Success 200 {object} dto.DashboardStatsDto
// @Router /api/v1/admin/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.DashboardQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	stats, err := h.dashboardService.Stats(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stats)
}
