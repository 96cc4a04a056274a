package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

var errDuplicateIngredient = errors.New("each ingredient may appear only once")

type CommandItemRequest struct {
	IngredientID string   `json:"ingredient_id"`
	Quantity     float64  `json:"quantity"`
	UnitPrice    *float64 `json:"unit_price"`
}

// Validate has a value receiver so that slices of items are checked element by element.
func (item CommandItemRequest) Validate() error {
	return validation.ValidateStruct(
		&item,
		validation.Field(&item.IngredientID, validation.Required, is.UUID),
		validation.Field(&item.Quantity, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&item.UnitPrice, validation.Min(0.0)),
	)
}

type CreateCommandRequest struct {
	FranchiseID string               `json:"franchise_id"`
	Status      string               `json:"status"`
	Items       []CommandItemRequest `json:"items"`
}

func (req *CreateCommandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FranchiseID, is.UUID),
		validation.Field(&req.Status, validation.In(string(domain.CommandDraft), string(domain.CommandConfirmed))),
		validation.Field(&req.Items, validation.Required, validation.Length(1, 200), validation.By(distinctIngredients)),
	)
}

func distinctIngredients(value interface{}) error {
	items, _ := value.([]CommandItemRequest)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.IngredientID]; ok {
			return errDuplicateIngredient
		}
		seen[item.IngredientID] = struct{}{}
	}

	return nil
}

func (req *CreateCommandRequest) Command() domain.CommandInput {
	status := domain.CommandStatus(req.Status)
	if status == "" {
		status = domain.CommandDraft
	}

	items := make([]domain.CommandItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.CommandItemInput{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return domain.CommandInput{
		FranchiseID: req.FranchiseID,
		Status:      status,
		Items:       items,
	}
}

type UpdateCommandStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateCommandStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, in(statusNames())),
	)
}

func statusNames() []string {
	names := make([]string, 0, len(domain.CommandStatuses))
	for _, status := range domain.CommandStatuses {
		names = append(names, string(status))
	}

	return names
}

// CommandFilterRequest holds the query parameters of the command list.
type CommandFilterRequest struct {
	FranchiseID string `json:"franchise_id" form:"franchise_id"`
	Status      string `json:"status" form:"status"`
}

func (req *CommandFilterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FranchiseID, is.UUID),
		validation.Field(&req.Status, in(statusNames())),
	)
}
