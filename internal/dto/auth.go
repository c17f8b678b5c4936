package dto

import (
	"mannamsalon/internal/core"
	"time"
)

type VerifyManagerDto struct {
	Password string `json:"password" binding:"required"`
}

type VerifyEmployeeDto struct {
	Name string `json:"name" binding:"required"`
}

// LoginResponseDto 登入成功後回傳的 token 與 session 摘要
type LoginResponseDto struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Session   *core.Session `json:"session"`
}
