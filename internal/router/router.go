package router

import (
	docs "mannamsalon/cmd/docs"
	"mannamsalon/config"
	"mannamsalon/internal/middleware"
	"mannamsalon/internal/pkg/response"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewPublicRouter,
	NewMeRouter,
	NewAdminRouter,
)

// 透過依賴注入將各模組路由掛上同一個 engine
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	decompress *middleware.Decompress,
	responseMiddleware *middleware.Response,
	session *middleware.Session,
	healthRouter *HealthRouter,
	publicRouter *PublicRouter,
	meRouter *MeRouter,
	adminRouter *AdminRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	// 先解壓，請求紀錄才看得到明文
	router.Use(decompress.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(responseMiddleware.FormatHandler())
	// 只解析 token，不強制登入；各群組再自行要求
	router.Use(session.Handler())
	router.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Code:        0,
			Data:        "ok",
			Message:     "success",
			Description: "service is alive",
		})
		c.Abort()
	})
	router.Use(func(c *gin.Context) {
		if v := config.App.Version; v != "" {
			c.Writer.Header().Set("X-App-Version", v)
		}
		c.Next()
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host

			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
				docs.SwaggerInfo.BasePath = "/"
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	healthRouter.RegisterHealthRoutes(router)
	publicRouter.RegisterRoutes(router)
	meRouter.RegisterRoutes(router)
	adminRouter.RegisterRoutes(router)
	if config.App.Env != "production" {
		pprof.Register(router)
	}
	return router
}
