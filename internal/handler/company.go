package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	trace          *telemetry.Trace
	companyService *service.CompanyService
}

func NewCompanyHandler(trace *telemetry.Trace, companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{trace: trace, companyService: companyService}
}

// Create
// @Summary 사업장 등록
// @Tags Admin-Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CompanyDto true "사업장 정보"
// @Success 201 {object} model.Company
// @Router /api/v1/admin/companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CompanyDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	company, err := h.companyService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, company)
}

// List
// @Summary 사업장 목록
// @Tags Admin-Company
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Company
// @Router /api/v1/admin/companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	companies, err := h.companyService.List(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, companies)
}

// Get
// @Summary 사업장 조회
// @Tags Admin-Company
// @Security BearerAuth
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} model.Company
// @Router /api/v1/admin/companies/{companyID} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	company, err := h.companyService.Get(ctx, c.Param("companyID"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, company)
}

// Update
// @Summary 사업장 수정
// @Tags Admin-Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param body body dto.CompanyDto true "사업장 정보"
// @Success 200 {object} model.Company
// @Router /api/v1/admin/companies/{companyID} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CompanyDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	company, err := h.companyService.Update(ctx, c.Param("companyID"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, company)
}

// Delete
// @Summary 사업장 삭제
// @Tags Admin-Company
// @Security BearerAuth
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/companies/{companyID} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.companyService.Delete(ctx, c.Param("companyID")); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
