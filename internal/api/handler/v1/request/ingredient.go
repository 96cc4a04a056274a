package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

type CreateIngredientRequest struct {
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	UnitPrice     float64  `json:"unit_price"`
	SupplierID    string   `json:"supplier_id"`
	CategoryIDs   []string `json:"category_ids"`
	NewCategories []string `json:"new_categories"`
}

func (req *CreateIngredientRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Unit, validation.Required, in(domain.IngredientUnits)),
		validation.Field(&req.UnitPrice, validation.Min(0.0)),
		validation.Field(&req.SupplierID, validation.Required, is.UUID),
		validation.Field(&req.CategoryIDs, uuidList, distinct),
		validation.Field(&req.NewCategories, categoryNames, distinct),
	)
}

func (req *CreateIngredientRequest) Ingredient() domain.Ingredient {
	return domain.Ingredient{
		Name:       req.Name,
		Unit:       req.Unit,
		UnitPrice:  req.UnitPrice,
		SupplierID: req.SupplierID,
	}
}

type UpdateIngredientRequest struct {
	Name        *string   `json:"name"`
	Unit        *string   `json:"unit"`
	UnitPrice   *float64  `json:"unit_price"`
	SupplierID  *string   `json:"supplier_id"`
	CategoryIDs *[]string `json:"category_ids"`
}

func (req *UpdateIngredientRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Unit, validation.NilOrNotEmpty, in(domain.IngredientUnits)),
		validation.Field(&req.UnitPrice, validation.Min(0.0)),
		validation.Field(&req.SupplierID, validation.NilOrNotEmpty, is.UUID),
		validation.Field(&req.CategoryIDs, uuidList, distinct),
	)
}

func (req *UpdateIngredientRequest) Update() domain.IngredientUpdate {
	update := domain.IngredientUpdate{
		Name:       req.Name,
		Unit:       req.Unit,
		UnitPrice:  req.UnitPrice,
		SupplierID: req.SupplierID,
	}
	if req.CategoryIDs != nil {
		update.CategoryIDs = append([]string{}, *req.CategoryIDs...)
	}

	return update
}
