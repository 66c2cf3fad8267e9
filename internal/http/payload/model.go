package payload

import (
	"fitstore/internal/core"

	"github.com/jellydator/validation"
)

// SaveModelRequest carries a trained regression model. The required
// metrics are pointers so that a legitimate 0.0 survives the Required
// check; only a missing field is rejected.
type SaveModelRequest struct {
	ModelName   string   `json:"model_name"`
	Theta0      *float64 `json:"theta_0"`
	Theta1      *float64 `json:"theta_1"`
	RMSE        *float64 `json:"rmse"`
	MAE         *float64 `json:"mae"`
	R2Score     *float64 `json:"r2_score"`
	SklearnRMSE *float64 `json:"sklearn_rmse"`
	SklearnMAE  *float64 `json:"sklearn_mae"`
	SklearnR2   *float64 `json:"sklearn_r2"`
}

func (s SaveModelRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ModelName, validation.Required),
		validation.Field(&s.Theta0, validation.NotNil),
		validation.Field(&s.Theta1, validation.NotNil),
		validation.Field(&s.RMSE, validation.NotNil),
		validation.Field(&s.MAE, validation.NotNil),
		validation.Field(&s.R2Score, validation.NotNil),
	)
}

func (s SaveModelRequest) ToMessage() core.SaveModelMessage {
	return core.SaveModelMessage{
		Name:        s.ModelName,
		Theta0:      *s.Theta0,
		Theta1:      *s.Theta1,
		RMSE:        *s.RMSE,
		MAE:         *s.MAE,
		R2Score:     *s.R2Score,
		SklearnRMSE: s.SklearnRMSE,
		SklearnMAE:  s.SklearnMAE,
		SklearnR2:   s.SklearnR2,
	}
}
