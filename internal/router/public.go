package router

import (
	"mannamsalon/internal/handler"
	"mannamsalon/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PublicRouter 不需登入的入口：登入、合約簽署、RPC
type PublicRouter struct {
	rateLimit       *middleware.RateLimit
	authHandler     *handler.AuthHandler
	contractHandler *handler.ContractHandler
	rpcHandler      *handler.RPCHandler
}

func NewPublicRouter(
	rateLimit *middleware.RateLimit,
	authHandler *handler.AuthHandler,
	contractHandler *handler.ContractHandler,
	rpcHandler *handler.RPCHandler,
) *PublicRouter {
	return &PublicRouter{
		rateLimit:       rateLimit,
		authHandler:     authHandler,
		contractHandler: contractHandler,
		rpcHandler:      rpcHandler,
	}
}

func (pr *PublicRouter) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/api/v1/auth", pr.rateLimit.Guard())
	{
		auth.POST("/manager", pr.authHandler.VerifyManager)
		auth.POST("/employee", pr.authHandler.VerifyEmployee)
	}

	contracts := r.Group("/api/v1/contracts", pr.rateLimit.Guard())
	{
		contracts.GET("/:contractID", pr.contractHandler.GetForSigning)
		contracts.POST("/:contractID/sign", pr.contractHandler.Sign)
	}

	r.POST("/api/rpc", pr.rateLimit.Guard(), pr.rpcHandler.Call)
}
