package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
)

type FranchiseDAO interface {
	Insert(ctx context.Context, franchise dao.Franchise) (dao.Franchise, error)
	Update(ctx context.Context, franchise dao.Franchise) (dao.Franchise, error)
	FindByID(ctx context.Context, id string) (dao.Franchise, error)
	FindByName(ctx context.Context, name string) (dao.Franchise, error)
	FindByEmail(ctx context.Context, email string) (dao.Franchise, error)
	FindAll(ctx context.Context) ([]dao.Franchise, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type FranchiseRepository struct {
	dao FranchiseDAO
}

func NewFranchiseRepository(dao FranchiseDAO) *FranchiseRepository {
	return &FranchiseRepository{
		dao: dao,
	}
}

func (r *FranchiseRepository) Create(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(franchise))
	if err != nil {
		return domain.Franchise{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FranchiseRepository) Update(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(franchise))
	if err != nil {
		return domain.Franchise{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FranchiseRepository) FindByID(ctx context.Context, id string) (domain.Franchise, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Franchise{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FranchiseRepository) FindByName(ctx context.Context, name string) (domain.Franchise, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Franchise{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FranchiseRepository) FindByEmail(ctx context.Context, email string) (domain.Franchise, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Franchise{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FranchiseRepository) FindAll(ctx context.Context) ([]domain.Franchise, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	franchises := make([]domain.Franchise, 0, len(found))
	for _, f := range found {
		franchises = append(franchises, r.daoToDomain(f))
	}

	return franchises, nil
}

func (r *FranchiseRepository) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *FranchiseRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FranchiseRepository) domainToDAO(f domain.Franchise) dao.Franchise {
	return dao.Franchise{
		Base:      dao.Base{ID: f.ID, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt},
		Name:      f.Name,
		Address:   f.Address,
		City:      f.City,
		ZipCode:   f.ZipCode,
		Country:   f.Country,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Phone:     f.Phone,
		Email:     optional(f.Email),
	}
}

func (r *FranchiseRepository) daoToDomain(f dao.Franchise) domain.Franchise {
	return domain.Franchise{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		City:      f.City,
		ZipCode:   f.ZipCode,
		Country:   f.Country,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Phone:     f.Phone,
		Email:     deref(f.Email),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
