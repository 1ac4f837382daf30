package user

import "plantkeeper/internal/domain/user"

type registerInput struct {
	Body user.BaseRequest
}

type registerOutput struct {
	Body AuthResponse
}

type loginInput struct {
	Body user.BaseRequest
}

type loginOutput struct {
	Body AuthResponse
}

type AuthResponse struct {
	ID     int    `json:"user_id"`
	Token  string `json:"token"`
	Status string `json:"status"`
}
