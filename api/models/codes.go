package models

import (
	"time"

	"github.com/jday1/euros/storage"
)

type CreateCodeRequest struct {
	Count int `json:"count"`
}

type CodeResponse struct {
	Code      string    `json:"code"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Code     string `json:"code"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func TransformInviteCodeFromStorage(c *storage.InviteCode) CodeResponse {
	return CodeResponse{
		Code:      c.Code,
		Used:      c.Used,
		CreatedAt: c.CreatedAt,
	}
}
