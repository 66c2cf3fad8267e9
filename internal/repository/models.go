package repository

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Email        *string `gorm:"type:varchar(255);uniqueIndex"` // nullable, unique when present
	CreatedAt    time.Time
}

type Model struct {
	ID          uint     `gorm:"primaryKey"`
	UserID      uint     `gorm:"not null;uniqueIndex:idx_models_user_name"`
	ModelName   string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_models_user_name"`
	Theta0      float64  `gorm:"column:theta_0;not null"`
	Theta1      float64  `gorm:"column:theta_1;not null"`
	RMSE        float64  `gorm:"column:rmse;not null"`
	MAE         float64  `gorm:"column:mae;not null"`
	R2Score     float64  `gorm:"column:r2_score;not null"`
	SklearnRMSE *float64 `gorm:"column:sklearn_rmse"` // optional reference metrics
	SklearnMAE  *float64 `gorm:"column:sklearn_mae"`
	SklearnR2   *float64 `gorm:"column:sklearn_r2"`
	Equation    string   `gorm:"not null"`
	CreatedAt   time.Time
	User        User `gorm:"foreignKey:UserID"`
}

// ModelMetrics carries the regression coefficients and accuracy metrics
// of a single training run.
type ModelMetrics struct {
	Theta0      float64
	Theta1      float64
	RMSE        float64
	MAE         float64
	R2Score     float64
	SklearnRMSE *float64
	SklearnMAE  *float64
	SklearnR2   *float64
}
