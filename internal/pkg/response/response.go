package response

import (
	"errors"
	cErr "mannamsalon/internal/pkg/error"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// RPCResponse 是 {action, ...} 端點的回傳格式
type RPCResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

const rawKey = "rawResponse"

func Create(c *gin.Context, data any) {
	message := "Create Success"
	if msg, ok := data.(gin.H); ok {
		if m, ok := msg["message"].(string); ok && m != "" {
			message = m
			delete(msg, "message")
		}
	}
	c.Set("data", data)
	c.Set("message", message)
	c.Set("status", http.StatusCreated)
	c.Abort()
}
func Success(c *gin.Context, data any) {
	message := "Request Success"
	if msg, ok := data.(gin.H); ok {
		if m, ok := msg["message"].(string); ok && m != "" {
			message = m
			delete(msg, "message")
		}
	}
	c.Set("data", data)
	c.Set("message", message)
	c.Abort()
}

// Raw 直接輸出 body，不包進統一格式（cleanup 與 rpc 端點使用）
func Raw(c *gin.Context, httpCode int, body any) {
	c.Set(rawKey, true)
	c.JSON(httpCode, body)
	c.Abort()
}

func IsRaw(c *gin.Context) bool {
	return c.GetBool(rawKey)
}

func RPCSuccess(c *gin.Context, data any) {
	Raw(c, http.StatusOK, RPCResponse{Success: true, Data: data})
}

func RPCFail(c *gin.Context, err error) {
	message := err.Error()
	var appErr *cErr.Error
	if errors.As(err, &appErr) && appErr.ErrorDesc() != "" {
		message = appErr.ErrorDesc()
	}
	Raw(c, http.StatusOK, RPCResponse{Success: false, Message: message})
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
func Fail(c *gin.Context, RequestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   RequestID,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, RequestID string, err error) {
	var v *cErr.Error
	if errors.As(err, &v) {
		Fail(c, RequestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
	} else {
		Fail(c, RequestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, err.Error(), "internal error")
	}
}
