package router

import (
	"mannamsalon/internal/handler"
	"mannamsalon/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MeRouter 任一已登入角色可用的路由
type MeRouter struct {
	session           *middleware.Session
	authHandler       *handler.AuthHandler
	attendanceHandler *handler.AttendanceHandler
	payrollHandler    *handler.PayrollHandler
	employeeHandler   *handler.EmployeeHandler
	noticeHandler     *handler.NoticeHandler
	scheduleHandler   *handler.ScheduleHandler
}

func NewMeRouter(
	session *middleware.Session,
	authHandler *handler.AuthHandler,
	attendanceHandler *handler.AttendanceHandler,
	payrollHandler *handler.PayrollHandler,
	employeeHandler *handler.EmployeeHandler,
	noticeHandler *handler.NoticeHandler,
	scheduleHandler *handler.ScheduleHandler,
) *MeRouter {
	return &MeRouter{
		session:           session,
		authHandler:       authHandler,
		attendanceHandler: attendanceHandler,
		payrollHandler:    payrollHandler,
		employeeHandler:   employeeHandler,
		noticeHandler:     noticeHandler,
		scheduleHandler:   scheduleHandler,
	}
}

func (mr *MeRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", mr.session.RequireSession())
	{
		api.GET("/auth/me", mr.authHandler.Me)
		api.POST("/auth/logout", mr.authHandler.Logout)

		me := api.Group("/me")
		{
			me.POST("/attendance/clock-in", mr.attendanceHandler.ClockIn)
			me.POST("/attendance/clock-out", mr.attendanceHandler.ClockOut)
			me.GET("/attendance/today", mr.attendanceHandler.Today)
			me.GET("/records", mr.attendanceHandler.MyRecords)
			me.GET("/salary", mr.payrollHandler.MySalary)
		}

		api.GET("/notices", mr.noticeHandler.List)
		api.GET("/schedules", mr.scheduleHandler.List)

		docs := api.Group("/employees/:uid/docs")
		{
			docs.GET("", mr.employeeHandler.GetDocs)
			docs.PUT("/bank-account", mr.employeeHandler.SaveBankAccount)
			docs.PUT("/health-cert", mr.employeeHandler.SaveHealthCert)
		}
	}
}
