package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateStockRequest struct {
	FranchiseID  string   `json:"franchise_id"`
	IngredientID string   `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
}

func (req *CreateStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FranchiseID, is.UUID),
		validation.Field(&req.IngredientID, validation.Required, is.UUID),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0.0)),
	)
}

type UpdateStockRequest struct {
	Quantity *float64 `json:"quantity"`
}

func (req *UpdateStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0.0)),
	)
}
