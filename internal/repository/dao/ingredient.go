package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrIngredientNameExists = errors.New("ingredient name already exists")

type Ingredient struct {
	Base

	Name       string     `gorm:"uniqueIndex:uni_ingredients_name;not null"`
	Unit       string     `gorm:"not null"`
	UnitPrice  float64    `gorm:"not null;default:0"`
	SupplierID string     `gorm:"type:uuid;not null;index"`
	Supplier   Supplier   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Categories []Category `gorm:"many2many:ingredient_categories;constraint:OnDelete:CASCADE"`
}

type IngredientFilter struct {
	SupplierID string
	CategoryID string
}

type IngredientDAO struct {
	db *gorm.DB
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{
		db: db,
	}
}

// InsertWithCategories creates newCategories, then the ingredient linked to
// them and to the existing categories, in one transaction.
func (d *IngredientDAO) InsertWithCategories(ctx context.Context, ingredient Ingredient, newCategories []Category) (Ingredient, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range newCategories {
			if err := tx.Create(&newCategories[i]).Error; err != nil {
				return categoryError(err)
			}
		}

		categories := append(ingredient.Categories, newCategories...)
		ingredient.Categories = nil
		if err := tx.Omit(clause.Associations).Create(&ingredient).Error; err != nil {
			return ingredientError(err)
		}

		if len(categories) > 0 {
			if err := tx.Model(&ingredient).Association("Categories").Append(categories); err != nil {
				return err
			}
		}
		ingredient.Categories = categories

		return nil
	})
	if err != nil {
		return Ingredient{}, err
	}

	return ingredient, nil
}

// Update saves the scalar columns. When replaceCategories is set the category
// links are replaced by ingredient.Categories.
func (d *IngredientDAO) Update(ctx context.Context, ingredient Ingredient, replaceCategories bool) (Ingredient, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := ingredient.Categories
		if err := tx.Omit(clause.Associations, "created_at").Save(&ingredient).Error; err != nil {
			return ingredientError(err)
		}

		if replaceCategories {
			if err := tx.Model(&ingredient).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Ingredient{}, err
	}

	return d.FindByID(ctx, ingredient.ID)
}

func (d *IngredientDAO) FindByID(ctx context.Context, id string) (Ingredient, error) {
	return first[Ingredient](d.db.WithContext(ctx).Preload("Categories"), "id = ?", id)
}

func (d *IngredientDAO) FindByName(ctx context.Context, name string) (Ingredient, error) {
	return first[Ingredient](d.db.WithContext(ctx), "name = ?", name)
}

func (d *IngredientDAO) FindByIDs(ctx context.Context, ids []string) ([]Ingredient, error) {
	var ingredients []Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return ingredients, nil
}

func (d *IngredientDAO) FindAll(ctx context.Context, filter IngredientFilter) ([]Ingredient, error) {
	query := d.db.WithContext(ctx).Preload("Categories").Order("ingredients.name")
	if filter.SupplierID != "" {
		query = query.Where("ingredients.supplier_id = ?", filter.SupplierID)
	}
	if filter.CategoryID != "" {
		query = query.Where("ingredients.id IN (?)",
			d.db.Table("ingredient_categories").Select("ingredient_id").Where("category_id = ?", filter.CategoryID))
	}

	var ingredients []Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return ingredients, nil
}

func (d *IngredientDAO) Exists(ctx context.Context, id string) (bool, error) {
	return exists[Ingredient](d.db.WithContext(ctx), "id = ?", id)
}

// Delete removes the ingredient's stock rows and category links with it.
// Ingredients referenced by commands cannot be deleted.
func (d *IngredientDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&StockFranchise{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM ingredient_categories WHERE ingredient_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Ingredient{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func ingredientError(err error) error {
	if isUniqueViolation(err, "uni_ingredients_name") {
		return ErrIngredientNameExists
	}

	return err
}
