package domain

import "errors"

var (
	MessageSuccessLogin     = "login success"
	MessageSuccessGetEditor = "success get editor profile"

	MessageFailedLogin     = "failed to login"
	MessageFailedGetEditor = "failed to get editor profile"

	ErrEditorNotFound         = errors.New("editor not found")
	ErrEmailOrPasswordInvalid = errors.New("email or password invalid")
)

type (
	EditorLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	EditorLoginResponse struct {
		Token string `json:"token"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	EditorProfile struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)
