package middleware

import (
	"strings"

	"mannamsalon/internal/core"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Session struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewSession(logger *zap.Logger, trace *telemetry.Trace, authService *service.AuthService) *Session {
	return &Session{logger: logger, trace: trace, authService: authService}
}

// BearerToken 取出 Authorization: Bearer <token>，或 ?token= 給簽署頁以外的下載連結使用
func BearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return c.Query("token")
}

const sessionErrKey = "sessionErr"

// Handler 解析 token 並把 session 放進 gin.Context；token 無效時也放行，由 Require* 決定是否拒絕
func (m *Session) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		ctx, span, end := m.trace.WithSpan(c, string(core.SpanSessionMiddleware))
		session, err := m.authService.Authenticate(ctx, token)
		if err != nil {
			msg := cErr.From(err).ErrorDesc()
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{Error: &msg})
			end(nil)
			c.Set(sessionErrKey, err)
			c.Next()
			return
		}
		m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{
			SessionID: session.ID,
			Role:      string(session.Role),
			UID:       session.UID,
			Store:     session.Store,
		})
		c.Set(core.ContextSessionKey, session)
		end(nil)
		c.Next()
	}
}

// RequireSession 任一角色
func (m *Session) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			response.AbortWithError(c, sessionError(c))
			return
		}
		c.Next()
	}
}

func (m *Session) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			response.AbortWithError(c, sessionError(c))
			return
		}
		if !session.IsManager() {
			m.logger.Info("manager route rejected", zap.String("path", c.Request.URL.Path), zap.String("uid", session.UID))
			response.AbortWithError(c, cErr.Forbidden("manager only"))
			return
		}
		c.Next()
	}
}

// sessionError 有帶 token 時回傳解析失敗的原因
func sessionError(c *gin.Context) error {
	if v, ok := c.Get(sessionErrKey); ok {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return cErr.InvalidSession("login required")
}

// CurrentSession 未登入時回傳 nil（不會是 typed nil）
func CurrentSession(c *gin.Context) *core.Session {
	v, ok := c.Get(core.ContextSessionKey)
	if !ok {
		return nil
	}
	session, ok := v.(*core.Session)
	if !ok || session == nil {
		return nil
	}
	return session
}
