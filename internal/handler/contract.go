package handler

import (
	"mannamsalon/internal/dto"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"
	"mannamsalon/utils/validate"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	trace           *telemetry.Trace
	contractService *service.ContractService
}

func NewContractHandler(trace *telemetry.Trace, contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{trace: trace, contractService: contractService}
}

// Create 建立合約並回傳簽署連結
// @Summary 근로계약서 생성
// @Tags Admin-Contract
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ContractFormDto true "계약 내용"
// @Success 201 {object} dto.ContractCreatedDto
// @Failure 400 {object} response.Response "missing fields"
// @Router /api/v1/admin/contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.ContractFormDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	created, err := h.contractService.Create(ctx, currentSession(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// List
// @Summary 계약서 목록
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Param status query string false "drafted | signed"
// @Param name query string false "직원 이름"
// @Param store query string false "매장"
// @Success 200 {array} model.Contract
// @Router /api/v1/admin/contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.ContractQueryDto
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	contracts, err := h.contractService.List(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, contracts)
}

// Get
// @Summary 계약서 조회
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} model.Contract
// @Router /api/v1/admin/contracts/{contractID} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	contract, err := h.contractService.Get(ctx, c.Param("contractID"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, contract)
}

// Delete 只能刪除尚未簽署的合約
// @Summary 계약서 삭제
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response "already signed"
// @Router /api/v1/admin/contracts/{contractID} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.contractService.Delete(ctx, currentSession(c), c.Param("contractID")); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}

// ListSigned
// @Summary 서명 완료 계약서 목록
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Param name query string false "직원 이름"
// @Success 200 {array} model.SignedContract
// @Router /api/v1/admin/signed-contracts [get]
func (h *ContractHandler) ListSigned(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	signed, err := h.contractService.ListSigned(ctx, c.Query("name"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, signed)
}

// GetForSigning 簽署頁面，不需登入
// @Summary 서명용 계약서 조회
// @Tags Contract
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} dto.ContractForSigningDto
// @Failure 404 {object} response.Response
// @Router /api/v1/contracts/{contractID} [get]
func (h *ContractHandler) GetForSigning(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	view, err := h.contractService.GetForSigning(ctx, c.Param("contractID"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, view)
}

// Sign
// @Summary 계약서 서명
// @Tags Contract
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param body body dto.SignContractDto true "서명"
// @Success 200 {object} dto.ContractForSigningDto
// @Failure 409 {object} response.Response "already signed"
// @Router /api/v1/contracts/{contractID}/sign [post]
func (h *ContractHandler) Sign(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.SignContractDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	signed, err := h.contractService.Sign(ctx, c.Param("contractID"), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, signed)
}

// SaveDraft 帶 id 時覆寫既有草稿
// @Summary 임시 저장
// @Tags Admin-Contract
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SaveDraftDto true "작성 중인 계약"
// @Success 200 {object} model.ContractDraft
// @Router /api/v1/admin/contract-drafts [put]
func (h *ContractHandler) SaveDraft(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.SaveDraftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	draft, err := h.contractService.SaveDraft(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, draft)
}

// ListDrafts
// @Summary 임시 저장 목록
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.ContractDraft
// @Router /api/v1/admin/contract-drafts [get]
func (h *ContractHandler) ListDrafts(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	drafts, err := h.contractService.ListDrafts(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, drafts)
}

// GetDraft
// @Summary 임시 저장 조회
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} model.ContractDraft
// @Router /api/v1/admin/contract-drafts/{draftID} [get]
func (h *ContractHandler) GetDraft(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	draft, err := h.contractService.GetDraft(ctx, c.Param("draftID"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, draft)
}

// DeleteDraft
// @Summary 임시 저장 삭제
// @Tags Admin-Contract
// @Security BearerAuth
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} response.Response
// @Router /api/v1/admin/contract-drafts/{draftID} [delete]
func (h *ContractHandler) DeleteDraft(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.contractService.DeleteDraft(ctx, c.Param("draftID")); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted"})
}
