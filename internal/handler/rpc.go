package handler

import (
	"encoding/json"
	"io"

	"mannamsalon/internal/dto"
	"mannamsalon/internal/middleware"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type RPCHandler struct {
	trace      *telemetry.Trace
	rpcService *service.RPCService
}

func NewRPCHandler(trace *telemetry.Trace, rpcService *service.RPCService) *RPCHandler {
	return &RPCHandler{trace: trace, rpcService: rpcService}
}

// Call 單一端點依 action 分派；錯誤一律 HTTP 200 + success:false
// @Summary RPC 호환 엔드포인트
// @Tags RPC
// @Accept json
// @Produce json
// @Param body body dto.RPCRequestDto true "{action, token, ...params}"
// @Success 200 {object} response.RPCResponse
// @Router /api/rpc [post]
func (h *RPCHandler) Call(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		end(err)
		response.RPCFail(c, cErr.BadRequest("cannot read request body"))
		return
	}
	var req dto.RPCRequestDto
	if err := json.Unmarshal(raw, &req); err != nil {
		end(err)
		response.RPCFail(c, cErr.BadRequest("invalid JSON body"))
		return
	}
	if req.Token == "" {
		req.Token = middleware.BearerToken(c)
	}
	req.Params = raw

	data, err := h.rpcService.Dispatch(ctx, &req)
	if err != nil {
		response.RPCFail(c, err)
		return
	}
	response.RPCSuccess(c, data)
}
