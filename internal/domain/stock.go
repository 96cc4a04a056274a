package domain

import "time"

// StockFranchise is the quantity of one ingredient held by one franchise.
type StockFranchise struct {
	ID           string      `json:"id"`
	FranchiseID  string      `json:"franchise_id"`
	IngredientID string      `json:"ingredient_id"`
	Quantity     float64     `json:"quantity"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
