package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// VerifyManager 管理者登入
// @Summary 管理者密碼登入
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.VerifyManagerDto true "密碼"
// @Success 200 {object} dto.LoginResponseDto
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/manager [post]
func (h *AuthHandler) VerifyManager(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.VerifyManagerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	res, err := h.authService.VerifyManager(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// VerifyEmployee 員工以姓名登入
// @Summary 직원 이름 로그인
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.VerifyEmployeeDto true "姓名"
// @Success 200 {object} dto.LoginResponseDto
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/employee [post]
func (h *AuthHandler) VerifyEmployee(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.VerifyEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	res, err := h.authService.VerifyEmployee(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Me 目前 session
// @Summary 取得目前登入資訊
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} core.Session
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, currentSession(c))
}

// Logout 刪除 session
// @Summary 登出
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.authService.Logout(ctx, currentSession(c)); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "logged out"})
}
