package router

import (
	"mannamsalon/internal/handler"
	"mannamsalon/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	session           *middleware.Session
	employeeHandler   *handler.EmployeeHandler
	attendanceHandler *handler.AttendanceHandler
	payrollHandler    *handler.PayrollHandler
	contractHandler   *handler.ContractHandler
	companyHandler    *handler.CompanyHandler
	noticeHandler     *handler.NoticeHandler
	scheduleHandler   *handler.ScheduleHandler
	dashboardHandler  *handler.DashboardHandler
	cleanupHandler    *handler.CleanupHandler
}

func NewAdminRouter(
	session *middleware.Session,
	employeeHandler *handler.EmployeeHandler,
	attendanceHandler *handler.AttendanceHandler,
	payrollHandler *handler.PayrollHandler,
	contractHandler *handler.ContractHandler,
	companyHandler *handler.CompanyHandler,
	noticeHandler *handler.NoticeHandler,
	scheduleHandler *handler.ScheduleHandler,
	dashboardHandler *handler.DashboardHandler,
	cleanupHandler *handler.CleanupHandler,
) *AdminRouter {
	return &AdminRouter{
		session:           session,
		employeeHandler:   employeeHandler,
		attendanceHandler: attendanceHandler,
		payrollHandler:    payrollHandler,
		contractHandler:   contractHandler,
		companyHandler:    companyHandler,
		noticeHandler:     noticeHandler,
		scheduleHandler:   scheduleHandler,
		dashboardHandler:  dashboardHandler,
		cleanupHandler:    cleanupHandler,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/api/v1/admin", ar.session.RequireManager())
	{
		employees := admin.Group("/employees")
		{
			employees.GET("", ar.employeeHandler.List)
			employees.GET("/:uid", ar.employeeHandler.Get)
			employees.POST("", ar.employeeHandler.Create)
			employees.PATCH("/:uid", ar.employeeHandler.Update)
			employees.POST("/:uid/resign", ar.employeeHandler.Resign)
			employees.DELETE("/:uid", ar.employeeHandler.Delete)
		}

		records := admin.Group("/records")
		{
			records.GET("", ar.attendanceHandler.List)
			records.POST("", ar.attendanceHandler.Add)
			records.POST("/confirm", ar.attendanceHandler.Confirm)
			records.PATCH("/:recordID", ar.attendanceHandler.Update)
			records.DELETE("/:recordID", ar.attendanceHandler.Delete)
		}

		admin.GET("/payroll", ar.payrollHandler.Monthly)
		admin.GET("/payroll/export", ar.payrollHandler.Export)

		contracts := admin.Group("/contracts")
		{
			contracts.GET("", ar.contractHandler.List)
			contracts.POST("", ar.contractHandler.Create)
			contracts.GET("/:contractID", ar.contractHandler.Get)
			contracts.DELETE("/:contractID", ar.contractHandler.Delete)
		}
		admin.GET("/signed-contracts", ar.contractHandler.ListSigned)

		drafts := admin.Group("/contract-drafts")
		{
			drafts.GET("", ar.contractHandler.ListDrafts)
			drafts.PUT("", ar.contractHandler.SaveDraft)
			drafts.GET("/:draftID", ar.contractHandler.GetDraft)
			drafts.DELETE("/:draftID", ar.contractHandler.DeleteDraft)
		}

		companies := admin.Group("/companies")
		{
			companies.GET("", ar.companyHandler.List)
			companies.POST("", ar.companyHandler.Create)
			companies.GET("/:companyID", ar.companyHandler.Get)
			companies.PUT("/:companyID", ar.companyHandler.Update)
			companies.DELETE("/:companyID", ar.companyHandler.Delete)
		}

		notices := admin.Group("/notices")
		{
			notices.POST("", ar.noticeHandler.Create)
			notices.PUT("/:noticeID", ar.noticeHandler.Update)
			notices.DELETE("/:noticeID", ar.noticeHandler.Delete)
		}

		schedules := admin.Group("/schedules")
		{
			schedules.POST("", ar.scheduleHandler.Add)
			schedules.POST("/bulk", ar.scheduleHandler.BulkAdd)
			schedules.PUT("/:scheduleID", ar.scheduleHandler.Update)
			schedules.DELETE("/:scheduleID", ar.scheduleHandler.Delete)
		}

		admin.GET("/dashboard", ar.dashboardHandler.Stats)
	}

	// 舊前端直接呼叫的維護端點，路徑維持不變
	r.POST("/cleanupOrphanedAuth", ar.session.RequireManager(), ar.cleanupHandler.CleanupOrphanedAuth)
}
