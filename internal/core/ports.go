package core

import (
	"context"
	"fitstore/internal/repository"
	"fitstore/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, password string, email *string) (repository.User, error)
	Authenticate(ctx context.Context, username, password string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	SaveModel(ctx context.Context, userID uint, modelName string, metrics repository.ModelMetrics) error
	ListModels(ctx context.Context, userID uint) ([]repository.Model, error)
	GetModel(ctx context.Context, modelID, userID uint) (repository.Model, error)
	DeleteModel(ctx context.Context, modelID, userID uint) (bool, error)
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Create(userID uint, username string) string
	Get(sessionID string) (session.Session, bool)
	Delete(sessionID string)
	IsAuthenticated(sessionID string) bool
}
