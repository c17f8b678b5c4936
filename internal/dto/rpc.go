package dto

import "encoding/json"

// RPCRequestDto {action, token, ...params}；其餘欄位依 action 各自解析
type RPCRequestDto struct {
	Action string          `json:"action"`
	Token  string          `json:"token,omitempty"`
	Params json.RawMessage `json:"-"`
}

// LogActionDto action 欄位已被 envelope 佔用，事件名稱改放 event
type LogActionDto struct {
	Event   string         `json:"event" binding:"required"`
	Details map[string]any `json:"details,omitempty"`
}
