package handler

import (
	"context"
	"fitstore/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Signup(ctx context.Context, msg core.SignupMessage) (core.UserRecord, error)
	Signin(ctx context.Context, msg core.SigninMessage) (string, core.UserRecord, error)
	Signout(sessionID string) bool
	CurrentUser(ctx context.Context, sessionID string) (core.UserRecord, error)
	SaveModel(ctx context.Context, sessionID string, msg core.SaveModelMessage) error
	ListModels(ctx context.Context, sessionID string) ([]core.ModelRecord, error)
	GetModel(ctx context.Context, sessionID string, modelID uint) (core.ModelRecord, error)
	DeleteModel(ctx context.Context, sessionID string, modelID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
