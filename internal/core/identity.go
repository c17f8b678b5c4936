package core

import "errors"

// IdentityUser 是身份服務（Firebase Authentication）中的帳號
type IdentityUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

var ErrIdentityUserNotFound = errors.New("identity user not found")
