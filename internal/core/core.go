package core

import (
	"context"
	"errors"
	"fitstore/internal/repository"
	"fmt"

	"go.uber.org/zap"
)

var ErrInvalidInput error = errors.New("invalid input")
var ErrUserExists error = errors.New("username already exists")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrUnauthorized error = errors.New("authentication required")
var ErrModelNotFound error = errors.New("model not found")

// FitStore composes the credential/model repository and the session
// registry into the account and model operations exposed over HTTP.
type FitStore struct {
	logs     *zap.SugaredLogger
	repo     Repository
	sessions SessionStore
}

func NewFitStore(logger *zap.SugaredLogger, repo Repository, sessions SessionStore) *FitStore {
	return &FitStore{
		logs:     logger,
		repo:     repo,
		sessions: sessions,
	}
}

// Signup validates the input locally, then creates the account. A taken
// username or email surfaces as ErrUserExists.
func (f *FitStore) Signup(ctx context.Context, msg SignupMessage) (UserRecord, error) {
	if err := msg.Validate(); err != nil {
		return UserRecord{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	user, err := f.repo.CreateUser(ctx, msg.Username, msg.Password, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	f.logs.Infow("user created", "userId", user.ID, "username", user.Username)

	return userToRecord(user), nil
}

// Signin verifies the credentials and issues a new session identifier.
func (f *FitStore) Signin(ctx context.Context, msg SigninMessage) (string, UserRecord, error) {
	user, err := f.repo.Authenticate(ctx, msg.Username, msg.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return "", UserRecord{}, ErrInvalidCredentials
		}
		return "", UserRecord{}, fmt.Errorf("authenticate user: %w", err)
	}

	sessionID := f.sessions.Create(user.ID, user.Username)

	f.logs.Infow("user signed in", "userId", user.ID, "username", user.Username)

	return sessionID, userToRecord(user), nil
}

// Signout revokes the session and reports whether one existed.
func (f *FitStore) Signout(sessionID string) bool {
	if !f.sessions.IsAuthenticated(sessionID) {
		return false
	}

	f.sessions.Delete(sessionID)
	return true
}

// CurrentUser resolves the session to the stored account. A missing
// session or user is ErrUnauthorized.
func (f *FitStore) CurrentUser(ctx context.Context, sessionID string) (UserRecord, error) {
	sess, ok := f.sessions.Get(sessionID)
	if !ok {
		return UserRecord{}, ErrUnauthorized
	}

	user, err := f.repo.GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUnauthorized
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return userToRecord(user), nil
}

func (f *FitStore) IsAuthenticated(sessionID string) bool {
	return f.sessions.IsAuthenticated(sessionID)
}

// SaveModel stores the model under the session's user, replacing any
// prior model with the same name.
func (f *FitStore) SaveModel(ctx context.Context, sessionID string, msg SaveModelMessage) error {
	sess, ok := f.sessions.Get(sessionID)
	if !ok {
		return ErrUnauthorized
	}

	metrics := repository.ModelMetrics{
		Theta0:      msg.Theta0,
		Theta1:      msg.Theta1,
		RMSE:        msg.RMSE,
		MAE:         msg.MAE,
		R2Score:     msg.R2Score,
		SklearnRMSE: msg.SklearnRMSE,
		SklearnMAE:  msg.SklearnMAE,
		SklearnR2:   msg.SklearnR2,
	}

	if err := f.repo.SaveModel(ctx, sess.UserID, msg.Name, metrics); err != nil {
		return fmt.Errorf("save model: %w", err)
	}

	f.logs.Infow("model saved", "userId", sess.UserID, "modelName", msg.Name)

	return nil
}

// ListModels returns the session's models, newest first.
func (f *FitStore) ListModels(ctx context.Context, sessionID string) ([]ModelRecord, error) {
	sess, ok := f.sessions.Get(sessionID)
	if !ok {
		return nil, ErrUnauthorized
	}

	models, err := f.repo.ListModels(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	records := make([]ModelRecord, len(models))
	for i, m := range models {
		records[i] = modelToRecord(m)
	}

	return records, nil
}

// GetModel fetches a single model scoped to the session's user. Another
// user's model is reported as ErrModelNotFound, same as a missing one.
func (f *FitStore) GetModel(ctx context.Context, sessionID string, modelID uint) (ModelRecord, error) {
	sess, ok := f.sessions.Get(sessionID)
	if !ok {
		return ModelRecord{}, ErrUnauthorized
	}

	model, err := f.repo.GetModel(ctx, modelID, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return ModelRecord{}, ErrModelNotFound
		}
		return ModelRecord{}, fmt.Errorf("get model: %w", err)
	}

	return modelToRecord(model), nil
}

// DeleteModel removes the model when it belongs to the session's user.
func (f *FitStore) DeleteModel(ctx context.Context, sessionID string, modelID uint) error {
	sess, ok := f.sessions.Get(sessionID)
	if !ok {
		return ErrUnauthorized
	}

	deleted, err := f.repo.DeleteModel(ctx, modelID, sess.UserID)
	if err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	if !deleted {
		return ErrModelNotFound
	}

	f.logs.Infow("model deleted", "userId", sess.UserID, "modelId", modelID)

	return nil
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func modelToRecord(m repository.Model) ModelRecord {
	return ModelRecord{
		ID:          m.ID,
		ModelName:   m.ModelName,
		Theta0:      m.Theta0,
		Theta1:      m.Theta1,
		RMSE:        m.RMSE,
		MAE:         m.MAE,
		R2Score:     m.R2Score,
		SklearnRMSE: m.SklearnRMSE,
		SklearnMAE:  m.SklearnMAE,
		SklearnR2:   m.SklearnR2,
		Equation:    m.Equation,
		CreatedAt:   m.CreatedAt,
	}
}
