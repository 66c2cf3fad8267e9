package core

import (
	"time"

	"github.com/jellydator/validation"
)

type SignupMessage struct {
	Username string
	Password string
	Email    *string
}

func (m SignupMessage) Validate() error {
	return validation.Errors{
		"username": validation.Validate(m.Username,
			validation.Required,
			validation.Length(3, 0).Error("must be at least 3 characters")),
		"password": validation.Validate(m.Password,
			validation.Required,
			validation.Length(6, 0).Error("must be at least 6 characters")),
	}.Filter()
}

type SigninMessage struct {
	Username string
	Password string
}

type SaveModelMessage struct {
	Name        string
	Theta0      float64
	Theta1      float64
	RMSE        float64
	MAE         float64
	R2Score     float64
	SklearnRMSE *float64
	SklearnMAE  *float64
	SklearnR2   *float64
}

// UserRecord is the public view of an account. The password hash never
// leaves the repository layer.
type UserRecord struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

type ModelRecord struct {
	ID          uint      `json:"id"`
	ModelName   string    `json:"model_name"`
	Theta0      float64   `json:"theta_0"`
	Theta1      float64   `json:"theta_1"`
	RMSE        float64   `json:"rmse"`
	MAE         float64   `json:"mae"`
	R2Score     float64   `json:"r2_score"`
	SklearnRMSE *float64  `json:"sklearn_rmse"`
	SklearnMAE  *float64  `json:"sklearn_mae"`
	SklearnR2   *float64  `json:"sklearn_r2"`
	Equation    string    `json:"equation"`
	CreatedAt   time.Time `json:"created_at"`
}
