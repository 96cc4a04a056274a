package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
)

type SupplierDAO interface {
	Insert(ctx context.Context, supplier dao.Supplier) (dao.Supplier, error)
	Update(ctx context.Context, supplier dao.Supplier) (dao.Supplier, error)
	FindByID(ctx context.Context, id string) (dao.Supplier, error)
	FindByName(ctx context.Context, name string) (dao.Supplier, error)
	FindByEmail(ctx context.Context, email string) (dao.Supplier, error)
	FindAll(ctx context.Context) ([]dao.Supplier, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type SupplierRepository struct {
	dao SupplierDAO
}

func NewSupplierRepository(dao SupplierDAO) *SupplierRepository {
	return &SupplierRepository{
		dao: dao,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	created, err := r.dao.Insert(ctx, supplierToDAO(supplier))
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return supplierToDomain(created), nil
}

func (r *SupplierRepository) Update(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	updated, err := r.dao.Update(ctx, supplierToDAO(supplier))
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return supplierToDomain(updated), nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (domain.Supplier, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return supplierToDomain(found), nil
}

func (r *SupplierRepository) FindByName(ctx context.Context, name string) (domain.Supplier, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return supplierToDomain(found), nil
}

func (r *SupplierRepository) FindByEmail(ctx context.Context, email string) (domain.Supplier, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return supplierToDomain(found), nil
}

func (r *SupplierRepository) FindAll(ctx context.Context) ([]domain.Supplier, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	suppliers := make([]domain.Supplier, 0, len(found))
	for _, s := range found {
		suppliers = append(suppliers, supplierToDomain(s))
	}

	return suppliers, nil
}

func (r *SupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func supplierToDAO(s domain.Supplier) dao.Supplier {
	return dao.Supplier{
		Base:        dao.Base{ID: s.ID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt},
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       optional(s.Email),
		Phone:       s.Phone,
		Address:     s.Address,
	}
}

func supplierToDomain(s dao.Supplier) domain.Supplier {
	return domain.Supplier{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       deref(s.Email),
		Phone:       s.Phone,
		Address:     s.Address,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
	Update(ctx context.Context, category dao.Category) (dao.Category, error)
	FindByID(ctx context.Context, id string) (dao.Category, error)
	FindByName(ctx context.Context, name string) (dao.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]dao.Category, error)
	FindAll(ctx context.Context) ([]dao.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, categoryToDAO(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return categoryToDomain(created), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	updated, err := r.dao.Update(ctx, categoryToDAO(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return categoryToDomain(updated), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return categoryToDomain(found), nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (domain.Category, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return categoryToDomain(found), nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return categoriesToDomain(found), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return categoriesToDomain(found), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func categoryToDAO(c domain.Category) dao.Category {
	return dao.Category{
		Base: dao.Base{ID: c.ID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt},
		Name: c.Name,
	}
}

func categoryToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func categoriesToDomain(found []dao.Category) []domain.Category {
	categories := make([]domain.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, categoryToDomain(c))
	}

	return categories
}
