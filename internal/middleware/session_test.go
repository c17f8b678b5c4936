package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mannamsalon/internal/core"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		url    string
		want   string
	}{
		{"bearer header", "Bearer abc", "/", "abc"},
		{"case insensitive", "bearer  abc ", "/", "abc"},
		{"query fallback", "", "/?token=xyz", "xyz"},
		{"other scheme", "Basic abc", "/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, BearerToken(c))
		})
	}
}

// runGuard 以指定的 session / 解析錯誤跑一次 guard，回傳是否放行與 gin 錯誤
func runGuard(guard gin.HandlerFunc, session *core.Session, sessionErr error) (bool, []*gin.Error) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if session != nil {
			c.Set(core.ContextSessionKey, session)
		}
		if sessionErr != nil {
			c.Set(sessionErrKey, sessionErr)
		}
		c.Next()
	})
	var errs []*gin.Error
	r.GET("/", func(c *gin.Context) {
		c.Next()
		errs = c.Errors
	}, guard, func(c *gin.Context) {
		reached = true
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	return reached, errs
}

func TestRequireSession(t *testing.T) {
	m := &Session{logger: zap.NewNop()}

	reached, errs := runGuard(m.RequireSession(), nil, nil)
	assert.False(t, reached)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0].Err, cErr.InvalidSession(""))

	// 帶了過期 token 時回傳原本的解析錯誤
	reached, errs = runGuard(m.RequireSession(), nil, cErr.InvalidSession("session expired"))
	assert.False(t, reached)
	require.Len(t, errs, 1)
	assert.Equal(t, "session expired", cErr.From(errs[0].Err).ErrorDesc())

	reached, _ = runGuard(m.RequireSession(), &core.Session{ID: "s1", Role: core.RoleEmployee, UID: "u1"}, nil)
	assert.True(t, reached)
}

func TestRequireManager(t *testing.T) {
	m := &Session{logger: zap.NewNop()}

	reached, errs := runGuard(m.RequireManager(), &core.Session{ID: "s1", Role: core.RoleEmployee, UID: "u1"}, nil)
	assert.False(t, reached)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0].Err, cErr.Forbidden(""))

	reached, _ = runGuard(m.RequireManager(), &core.Session{ID: "s2", Role: core.RoleManager}, nil)
	assert.True(t, reached)
}

func TestCurrentSession_NeverTypedNil(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentSession(c))

	var typed *core.Session
	c.Set(core.ContextSessionKey, typed)
	assert.True(t, CurrentSession(c) == nil)
}
