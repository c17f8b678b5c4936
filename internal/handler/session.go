package handler

import (
	"mannamsalon/internal/core"
	"mannamsalon/internal/middleware"

	"github.com/gin-gonic/gin"
)

func currentSession(c *gin.Context) *core.Session {
	return middleware.CurrentSession(c)
}
