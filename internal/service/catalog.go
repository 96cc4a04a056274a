package service

import (
	"context"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	Update(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	FindByID(ctx context.Context, id string) (domain.Supplier, error)
	FindByName(ctx context.Context, name string) (domain.Supplier, error)
	FindByEmail(ctx context.Context, email string) (domain.Supplier, error)
	FindAll(ctx context.Context) ([]domain.Supplier, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type SupplierService struct {
	repo SupplierRepository
}

func NewSupplierService(repo SupplierRepository) *SupplierService {
	return &SupplierService{
		repo: repo,
	}
}

func supplierID(s domain.Supplier) string { return s.ID }

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "s.repo.FindAll", nil)
	}

	return suppliers, nil
}

func (s *SupplierService) Get(ctx context.Context, id string) (domain.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, translate(err, "s.repo.FindByID", ErrSupplierNotFound)
	}

	return supplier, nil
}

func (s *SupplierService) Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	if err := s.checkUnique(ctx, supplier, ""); err != nil {
		return domain.Supplier{}, err
	}

	created, err := s.repo.Create(ctx, supplier)
	if err != nil {
		return domain.Supplier{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

func (s *SupplierService) Update(ctx context.Context, id string, update domain.SupplierUpdate) (domain.Supplier, error) {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return domain.Supplier{}, err
	}

	if update.Name != nil {
		supplier.Name = *update.Name
	}
	if update.ContactName != nil {
		supplier.ContactName = *update.ContactName
	}
	if update.Email != nil {
		supplier.Email = *update.Email
	}
	if update.Phone != nil {
		supplier.Phone = *update.Phone
	}
	if update.Address != nil {
		supplier.Address = *update.Address
	}

	if err = s.checkUnique(ctx, supplier, supplier.ID); err != nil {
		return domain.Supplier{}, err
	}

	updated, err := s.repo.Update(ctx, supplier)
	if err != nil {
		return domain.Supplier{}, translate(err, "s.repo.Update", ErrSupplierNotFound)
	}

	return updated, nil
}

// Delete is refused by the database while ingredients reference the supplier.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrSupplierNotFound)
	}

	return nil
}

func (s *SupplierService) checkUnique(ctx context.Context, supplier domain.Supplier, selfID string) error {
	return checkAll(ctx,
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByName, supplierID, supplier.Name, selfID, ErrSupplierNameExists)
		},
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByEmail, supplierID, supplier.Email, selfID, ErrSupplierEmailExists)
		},
	)
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Update(ctx context.Context, category domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, id string) (domain.Category, error)
	FindByName(ctx context.Context, name string) (domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

func categoryID(c domain.Category) string { return c.ID }

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "s.repo.FindAll", nil)
	}

	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, translate(err, "s.repo.FindByID", ErrCategoryNotFound)
	}

	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (domain.Category, error) {
	if err := ensureUnique(ctx, s.repo.FindByName, categoryID, name, "", ErrCategoryNameExists); err != nil {
		return domain.Category{}, err
	}

	created, err := s.repo.Create(ctx, domain.Category{Name: name})
	if err != nil {
		return domain.Category{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	if err = ensureUnique(ctx, s.repo.FindByName, categoryID, name, id, ErrCategoryNameExists); err != nil {
		return domain.Category{}, err
	}

	category.Name = name
	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return domain.Category{}, translate(err, "s.repo.Update", ErrCategoryNotFound)
	}

	return updated, nil
}

// Delete unlinks the category from its ingredients.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrCategoryNotFound)
	}

	return nil
}
