package handler

import "github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"

type registerRequest struct {
	Name            string `json:"name"            validate:"required,max=100"`
	Email           string `json:"email"           validate:"required,email"`
	Phone           string `json:"phone"           validate:"omitempty,max=20"`
	Password        string `json:"password"        validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Msg  string       `json:"msg"`
	User *domain.User `json:"user"`
}

type loginResponse struct {
	Msg  string              `json:"msg"`
	User *domain.SessionUser `json:"user"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}
