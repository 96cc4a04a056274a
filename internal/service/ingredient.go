package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient domain.Ingredient, newCategories []domain.Category) (domain.Ingredient, error)
	Update(ctx context.Context, ingredient domain.Ingredient, replaceCategories bool) (domain.Ingredient, error)
	FindByID(ctx context.Context, id string) (domain.Ingredient, error)
	FindByName(ctx context.Context, name string) (domain.Ingredient, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error)
	FindAll(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type IngredientService struct {
	repo         IngredientRepository
	supplierRepo SupplierRepository
	categoryRepo CategoryRepository
}

func NewIngredientService(repo IngredientRepository, supplierRepo SupplierRepository, categoryRepo CategoryRepository) *IngredientService {
	return &IngredientService{
		repo:         repo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
	}
}

func ingredientID(i domain.Ingredient) string { return i.ID }

func (s *IngredientService) List(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, translate(err, "s.repo.FindAll", nil)
	}

	return ingredients, nil
}

func (s *IngredientService) Get(ctx context.Context, id string) (domain.Ingredient, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Ingredient{}, translate(err, "s.repo.FindByID", ErrIngredientNotFound)
	}

	return ingredient, nil
}

// Create links the ingredient to the existing categoryIDs and to
// newCategories, which are created in the same transaction.
func (s *IngredientService) Create(ctx context.Context, ingredient domain.Ingredient, categoryIDs, newCategories []string) (domain.Ingredient, error) {
	var linked []domain.Category
	checks := []func(context.Context) error{
		func(ctx context.Context) error {
			return ensureExists(ctx, s.supplierRepo.Exists, ingredient.SupplierID, ErrSupplierNotFound)
		},
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByName, ingredientID, ingredient.Name, "", ErrIngredientNameExists)
		},
		func(ctx context.Context) error {
			var err error
			linked, err = s.findCategories(ctx, categoryIDs)
			return err
		},
	}
	for _, name := range newCategories {
		name := strings.TrimSpace(name)
		checks = append(checks, func(ctx context.Context) error {
			return ensureUnique(ctx, s.categoryRepo.FindByName, categoryID, name, "", ErrCategoryNameExists)
		})
	}
	if err := checkAll(ctx, checks...); err != nil {
		return domain.Ingredient{}, err
	}

	fresh := make([]domain.Category, 0, len(newCategories))
	for _, name := range newCategories {
		fresh = append(fresh, domain.Category{Name: strings.TrimSpace(name)})
	}
	ingredient.Categories = linked

	created, err := s.repo.Create(ctx, ingredient, fresh)
	if err != nil {
		return domain.Ingredient{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

func (s *IngredientService) Update(ctx context.Context, id string, update domain.IngredientUpdate) (domain.Ingredient, error) {
	ingredient, err := s.Get(ctx, id)
	if err != nil {
		return domain.Ingredient{}, err
	}

	if update.Name != nil {
		ingredient.Name = *update.Name
	}
	if update.Unit != nil {
		ingredient.Unit = *update.Unit
	}
	if update.UnitPrice != nil {
		ingredient.UnitPrice = *update.UnitPrice
	}
	if update.SupplierID != nil {
		ingredient.SupplierID = *update.SupplierID
	}

	replaceCategories := update.CategoryIDs != nil
	checks := []func(context.Context) error{
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByName, ingredientID, ingredient.Name, id, ErrIngredientNameExists)
		},
	}
	if update.SupplierID != nil {
		checks = append(checks, func(ctx context.Context) error {
			return ensureExists(ctx, s.supplierRepo.Exists, ingredient.SupplierID, ErrSupplierNotFound)
		})
	}
	var linked []domain.Category
	if replaceCategories {
		checks = append(checks, func(ctx context.Context) error {
			var err error
			linked, err = s.findCategories(ctx, update.CategoryIDs)
			return err
		})
	}
	if err = checkAll(ctx, checks...); err != nil {
		return domain.Ingredient{}, err
	}
	if replaceCategories {
		ingredient.Categories = linked
	}

	updated, err := s.repo.Update(ctx, ingredient, replaceCategories)
	if err != nil {
		return domain.Ingredient{}, translate(err, "s.repo.Update", ErrIngredientNotFound)
	}

	return updated, nil
}

// Delete removes the ingredient's stock rows and category links. Ingredients
// used by commands are refused by the database.
func (s *IngredientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrIngredientNotFound)
	}

	return nil
}

func (s *IngredientService) findCategories(ctx context.Context, ids []string) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	categories, err := s.categoryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, translate(err, "s.categoryRepo.FindByIDs", nil)
	}

	found := make(map[string]bool, len(categories))
	for _, c := range categories {
		found[c.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("category %s -> %w", id, ErrCategoryNotFound)
		}
	}

	return categories, nil
}
