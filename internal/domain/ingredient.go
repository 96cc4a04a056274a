package domain

import "time"

var IngredientUnits = []string{"kg", "g", "l", "ml", "unit"}

type Ingredient struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Unit       string     `json:"unit"`
	UnitPrice  float64    `json:"unit_price"`
	SupplierID string     `json:"supplier_id"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IngredientUpdate replaces the category links only when CategoryIDs is non-nil.
type IngredientUpdate struct {
	Name        *string
	Unit        *string
	UnitPrice   *float64
	SupplierID  *string
	CategoryIDs []string
}

type IngredientFilter struct {
	SupplierID string
	CategoryID string
}
