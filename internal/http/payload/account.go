package payload

import (
	"fitstore/internal/core"

	"github.com/jellydator/validation"
)

type SignupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Username: s.Username,
		Password: s.Password,
		Email:    s.Email,
	}
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s SigninRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SigninRequest) ToMessage() core.SigninMessage {
	return core.SigninMessage{
		Username: s.Username,
		Password: s.Password,
	}
}
