package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStockExists = errors.New("stock already exists for this franchise and ingredient")

const stockPairIndex = "uni_stock_franchise_ingredient"

type StockFranchise struct {
	Base

	FranchiseID  string     `gorm:"type:uuid;not null;uniqueIndex:uni_stock_franchise_ingredient,priority:1"`
	Franchise    Franchise  `gorm:"constraint:OnDelete:CASCADE"`
	IngredientID string     `gorm:"type:uuid;not null;uniqueIndex:uni_stock_franchise_ingredient,priority:2"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:CASCADE"`
	Quantity     float64    `gorm:"not null;default:0"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) Insert(ctx context.Context, stock StockFranchise) (StockFranchise, error) {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(&stock).Error; err != nil {
		if isUniqueViolation(err, stockPairIndex) {
			return StockFranchise{}, ErrStockExists
		}

		return StockFranchise{}, err
	}

	return d.FindByID(ctx, stock.ID)
}

func (d *StockDAO) UpdateQuantity(ctx context.Context, id string, quantity float64) (StockFranchise, error) {
	result := d.db.WithContext(ctx).Model(&StockFranchise{}).Where("id = ?", id).Update("quantity", quantity)
	if result.Error != nil {
		return StockFranchise{}, result.Error
	}
	if result.RowsAffected == 0 {
		return StockFranchise{}, ErrNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *StockDAO) FindByID(ctx context.Context, id string) (StockFranchise, error) {
	return first[StockFranchise](d.db.WithContext(ctx).Preload("Ingredient"), "id = ?", id)
}

func (d *StockDAO) FindByFranchise(ctx context.Context, franchiseID string) ([]StockFranchise, error) {
	var stocks []StockFranchise
	err := d.db.WithContext(ctx).
		Preload("Ingredient").
		Joins("JOIN ingredients ON ingredients.id = stock_franchises.ingredient_id").
		Where("stock_franchises.franchise_id = ?", franchiseID).
		Order("ingredients.name").
		Find(&stocks).Error
	if err != nil {
		return nil, err
	}

	return stocks, nil
}

func (d *StockDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&StockFranchise{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpsertQuantities sets the quantity of every given ingredient in one
// franchise, creating missing stock rows. Used by the spreadsheet import.
func (d *StockDAO) UpsertQuantities(ctx context.Context, franchiseID string, quantities map[string]float64) (int, error) {
	if len(quantities) == 0 {
		return 0, nil
	}

	rows := make([]StockFranchise, 0, len(quantities))
	for ingredientID, quantity := range quantities {
		rows = append(rows, StockFranchise{FranchiseID: franchiseID, IngredientID: ingredientID, Quantity: quantity})
	}

	result := d.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "franchise_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&rows)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// addStock increases the franchise stock of each ingredient inside tx.
func addStock(tx *gorm.DB, franchiseID string, quantities map[string]float64) error {
	for ingredientID, quantity := range quantities {
		row := StockFranchise{FranchiseID: franchiseID, IngredientID: ingredientID, Quantity: quantity}
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "franchise_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("stock_franchises.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}

	return nil
}
