package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
	docsService     *service.DocsService
}

func NewEmployeeHandler(
	trace *telemetry.Trace,
	employeeService *service.EmployeeService,
	docsService *service.DocsService,
) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService, docsService: docsService}
}

// List 員工列表
// @Summary 직원 목록
// @Tags Admin-Employee
// @Security BearerAuth
// @Produce json
// @Param store query string false "매장"
// @Param status query string false "active / resigned"
// @Param name query string false "이름"
// @Success 200 {array} model.User
// @Router /api/v1/admin/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.EmployeeQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	users, err := h.employeeService.List(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, users)
}

// Get 單一員工
// @Summary 직원 조회
// @Tags Admin-Employee
// @Security BearerAuth
// @Produce json
// @Param uid path string true "Employee UID"
// @Success 200 {object} model.User
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/employees/{uid} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	user, err := h.employeeService.Get(ctx, c.Param("uid"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, user)
}

// Create 新增員工
// @Summary 직원 등록
// @Tags Admin-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "직원 정보"
// @Success 201 {object} model.User
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/admin/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	user, err := h.employeeService.Create(ctx, currentSession(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, user)
}

// Update 部分更新
// @Summary 직원 정보 수정
// @Tags Admin-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uid path string true "Employee UID"
// @Param body body dto.UpdateEmployeeDto true "수정할 항목"
// @Success 200 {object} model.User
// @Router /api/v1/admin/employees/{uid} [patch]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	user, err := h.employeeService.Update(ctx, c.Param("uid"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, user)
}

// Resign 離職處理，會刪除員工文件
// @Summary 퇴사 처리
// @Tags Admin-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uid path string true "Employee UID"
// @Param body body dto.ResignEmployeeDto true "퇴사일, 사유"
// @Success 200 {object} model.User
// @Failure 409 {object} response.Response
// @Router /api/v1/admin/employees/{uid}/resign [post]
func (h *EmployeeHandler) Resign(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.ResignEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	user, err := h.employeeService.Resign(ctx, currentSession(c), c.Param("uid"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, user)
}

// Delete 刪除員工
// @Summary 직원 삭제
// @Tags Admin-Employee
// @Security BearerAuth
// @Produce json
// @Param uid path string true "Employee UID"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/employees/{uid} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	uid := c.Param("uid")
	if err := h.employeeService.Delete(ctx, currentSession(c), uid); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted", "uid": uid})
}

// GetDocs 員工文件（管理者或本人）
// @Summary 직원 서류 조회
// @Tags Employee-Docs
// @Security BearerAuth
// @Produce json
// @Param uid path string true "Employee UID"
// @Success 200 {object} dto.EmployeeDocsResponseDto
// @Failure 403 {object} response.Response
// @Router /api/v1/employees/{uid}/docs [get]
func (h *EmployeeHandler) GetDocs(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	docs, err := h.docsService.Get(ctx, currentSession(c), c.Param("uid"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, docs)
}

// SaveBankAccount
// @Summary 급여 계좌 저장
// @Tags Employee-Docs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uid path string true "Employee UID"
// @Param body body dto.BankAccountDto true "계좌 정보"
// @Success 200 {object} response.Response
// @Router /api/v1/employees/{uid}/docs/bank-account [put]
func (h *EmployeeHandler) SaveBankAccount(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.BankAccountDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.docsService.SaveBankAccount(ctx, currentSession(c), c.Param("uid"), &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "saved"})
}

// SaveHealthCert 圖片可省略，沿用上次上傳
// @Summary 보건증 저장
// @Tags Employee-Docs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uid path string true "Employee UID"
// @Param body body dto.HealthCertDto true "만료일, 이미지(data URL)"
// @Success 200 {object} response.Response
// @Router /api/v1/employees/{uid}/docs/health-cert [put]
func (h *EmployeeHandler) SaveHealthCert(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.HealthCertDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.docsService.SaveHealthCert(ctx, currentSession(c), c.Param("uid"), &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "saved"})
}
