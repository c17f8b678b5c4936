package handler

import (
	"net/http"

	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type CleanupHandler struct {
	trace           *telemetry.Trace
	identityService *service.IdentityService
}

func NewCleanupHandler(trace *telemetry.Trace, identityService *service.IdentityService) *CleanupHandler {
	return &CleanupHandler{trace: trace, identityService: identityService}
}

// CleanupOrphanedAuth 刪除 users 集合中已不存在的登入帳號，回應不經過統一包裝
// @Summary 고아 인증 계정 정리
// @Tags Admin-Maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CleanupResultDto
// @Failure 500 {object} map[string]any "{success:false, error}"
// @Router /cleanupOrphanedAuth [post]
func (h *CleanupHandler) CleanupOrphanedAuth(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	result, err := h.identityService.CleanupOrphans(ctx, "http")
	if err != nil {
		end(err)
		response.Raw(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   cErr.From(err).ErrorDesc(),
		})
		return
	}
	response.Raw(c, http.StatusOK, result)
}
