package repository

import (
	"context"
	"errors"
	"fitstore/internal/db"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("username or email already exists")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrModelNotFound error = errors.New("model not found")

// Repository persists user accounts and their saved regression models.
type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Model{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser stores a new account with a bcrypt hash of the password.
// A username or email collision is reported as ErrUserExists.
func (r *Repository) CreateUser(ctx context.Context, username, password string, email *string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	}

	if err := r.db.Insert(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the credentials against the stored hash. A
// missing user and a wrong password are both ErrInvalidCredentials.
func (r *Repository) Authenticate(ctx context.Context, username, password string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// SaveModel upserts a model record keyed on (user_id, model_name): a
// re-save under the same name fully replaces the prior row. The display
// equation is derived from the coefficients at save time.
func (r *Repository) SaveModel(ctx context.Context, userID uint, modelName string, metrics ModelMetrics) error {
	model := Model{
		UserID:      userID,
		ModelName:   modelName,
		Theta0:      metrics.Theta0,
		Theta1:      metrics.Theta1,
		RMSE:        metrics.RMSE,
		MAE:         metrics.MAE,
		R2Score:     metrics.R2Score,
		SklearnRMSE: metrics.SklearnRMSE,
		SklearnMAE:  metrics.SklearnMAE,
		SklearnR2:   metrics.SklearnR2,
		Equation:    fmt.Sprintf("y = %.4fx + %.4f", metrics.Theta1, metrics.Theta0),
	}

	if err := r.db.Upsert(ctx, &model, "user_id", "model_name"); err != nil {
		return fmt.Errorf("upsert model: %w", err)
	}

	return nil
}

// ListModels returns all models of the user, newest first.
func (r *Repository) ListModels(ctx context.Context, userID uint) ([]Model, error) {
	models := []Model{}

	err := r.db.GetAllBy(ctx, "user_id", userID, "created_at DESC", &models)
	if err != nil {
		return nil, fmt.Errorf("get models by user: %w", err)
	}

	return models, nil
}

// GetModel looks up a model by id scoped to its owner. A model owned by
// another user is indistinguishable from an absent one.
func (r *Repository) GetModel(ctx context.Context, modelID, userID uint) (Model, error) {
	var model Model

	err := r.db.GetOneWhere(ctx, map[string]any{"id": modelID, "user_id": userID}, &model)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Model{}, ErrModelNotFound
		}
		return Model{}, fmt.Errorf("get model by id: %w", err)
	}

	return model, nil
}

// DeleteModel removes the model only when both id and owner match and
// reports whether a row was actually deleted.
func (r *Repository) DeleteModel(ctx context.Context, modelID, userID uint) (bool, error) {
	affected, err := r.db.DeleteWhere(ctx, &Model{}, map[string]any{"id": modelID, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("delete model: %w", err)
	}

	return affected > 0, nil
}
