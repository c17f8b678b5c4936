package core

import "github.com/golang-jwt/jwt/v4"

// Claims 只帶 session id，其餘資訊一律從 Redis 的 session 取得
type Claims struct {
	SessionID string `json:"sid"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}
