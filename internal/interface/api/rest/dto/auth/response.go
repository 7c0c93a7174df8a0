package auth

import (
	"user-registration-api/internal/interface/api/rest/dto/user"
)

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    user.User `json:"user"`
}
