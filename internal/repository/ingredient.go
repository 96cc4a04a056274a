package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
)

type IngredientDAO interface {
	InsertWithCategories(ctx context.Context, ingredient dao.Ingredient, newCategories []dao.Category) (dao.Ingredient, error)
	Update(ctx context.Context, ingredient dao.Ingredient, replaceCategories bool) (dao.Ingredient, error)
	FindByID(ctx context.Context, id string) (dao.Ingredient, error)
	FindByName(ctx context.Context, name string) (dao.Ingredient, error)
	FindByIDs(ctx context.Context, ids []string) ([]dao.Ingredient, error)
	FindAll(ctx context.Context, filter dao.IngredientFilter) ([]dao.Ingredient, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type IngredientRepository struct {
	dao IngredientDAO
}

func NewIngredientRepository(dao IngredientDAO) *IngredientRepository {
	return &IngredientRepository{
		dao: dao,
	}
}

// Create links the ingredient to its existing Categories and to newCategories,
// which are created in the same transaction.
func (r *IngredientRepository) Create(ctx context.Context, ingredient domain.Ingredient, newCategories []domain.Category) (domain.Ingredient, error) {
	fresh := make([]dao.Category, 0, len(newCategories))
	for _, c := range newCategories {
		fresh = append(fresh, categoryToDAO(c))
	}

	created, err := r.dao.InsertWithCategories(ctx, ingredientToDAO(ingredient), fresh)
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("r.dao.InsertWithCategories -> %w", err)
	}

	return ingredientToDomain(created), nil
}

func (r *IngredientRepository) Update(ctx context.Context, ingredient domain.Ingredient, replaceCategories bool) (domain.Ingredient, error) {
	updated, err := r.dao.Update(ctx, ingredientToDAO(ingredient), replaceCategories)
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return ingredientToDomain(updated), nil
}

func (r *IngredientRepository) FindByID(ctx context.Context, id string) (domain.Ingredient, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return ingredientToDomain(found), nil
}

func (r *IngredientRepository) FindByName(ctx context.Context, name string) (domain.Ingredient, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return ingredientToDomain(found), nil
}

func (r *IngredientRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return ingredientsToDomain(found), nil
}

func (r *IngredientRepository) FindAll(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error) {
	found, err := r.dao.FindAll(ctx, dao.IngredientFilter{
		SupplierID: filter.SupplierID,
		CategoryID: filter.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return ingredientsToDomain(found), nil
}

func (r *IngredientRepository) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *IngredientRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func ingredientToDAO(i domain.Ingredient) dao.Ingredient {
	categories := make([]dao.Category, 0, len(i.Categories))
	for _, c := range i.Categories {
		categories = append(categories, categoryToDAO(c))
	}

	return dao.Ingredient{
		Base:       dao.Base{ID: i.ID, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt},
		Name:       i.Name,
		Unit:       i.Unit,
		UnitPrice:  i.UnitPrice,
		SupplierID: i.SupplierID,
		Categories: categories,
	}
}

func ingredientToDomain(i dao.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:         i.ID,
		Name:       i.Name,
		Unit:       i.Unit,
		UnitPrice:  i.UnitPrice,
		SupplierID: i.SupplierID,
		Categories: categoriesToDomain(i.Categories),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func ingredientsToDomain(found []dao.Ingredient) []domain.Ingredient {
	ingredients := make([]domain.Ingredient, 0, len(found))
	for _, i := range found {
		ingredients = append(ingredients, ingredientToDomain(i))
	}

	return ingredients
}
