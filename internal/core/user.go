package core

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // 管理者：員工、合約、薪資皆可操作
	RoleEmployee Role = "employee" // 員工：打卡、查詢自己的資料
)

type Status string

const (
	StatusActive   Status = "active"   // 在職
	StatusResigned Status = "resigned" // 已離職，保留出勤與合約紀錄
)

// Session 是每個請求明確傳遞的登入上下文
type Session struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	UID       string    `json:"uid,omitempty"`
	Name      string    `json:"name,omitempty"`
	Store     string    `json:"store,omitempty"`
	Position  string    `json:"position,omitempty"`
	LoginTime time.Time `json:"loginTime"`
}

func (s *Session) IsManager() bool {
	return s != nil && s.Role == RoleManager
}

const ContextSessionKey = "session"
