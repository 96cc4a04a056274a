package service

import (
	"context"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
)

type FranchiseRepository interface {
	Create(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error)
	Update(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error)
	FindByID(ctx context.Context, id string) (domain.Franchise, error)
	FindByName(ctx context.Context, name string) (domain.Franchise, error)
	FindByEmail(ctx context.Context, email string) (domain.Franchise, error)
	FindAll(ctx context.Context) ([]domain.Franchise, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type FranchiseService struct {
	repo FranchiseRepository
}

func NewFranchiseService(repo FranchiseRepository) *FranchiseService {
	return &FranchiseService{
		repo: repo,
	}
}

func franchiseID(f domain.Franchise) string { return f.ID }

// List returns every franchise to administrators and only their own to tenant users.
func (s *FranchiseService) List(ctx context.Context, claims domain.Claims) ([]domain.Franchise, error) {
	switch p := permission.PrincipalOf(claims).(type) {
	case permission.TenantUser:
		if p.FranchiseID == "" {
			return nil, permission.ErrForbiddenFranchise
		}
		franchise, err := s.repo.FindByID(ctx, p.FranchiseID)
		if err != nil {
			return nil, translate(err, "s.repo.FindByID", ErrFranchiseNotFound)
		}
		return []domain.Franchise{franchise}, nil
	}

	franchises, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "s.repo.FindAll", nil)
	}

	return franchises, nil
}

func (s *FranchiseService) Get(ctx context.Context, claims domain.Claims, id string) (domain.Franchise, error) {
	if err := permission.ValidateFranchiseAccess(claims, id); err != nil {
		return domain.Franchise{}, err
	}

	franchise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Franchise{}, translate(err, "s.repo.FindByID", ErrFranchiseNotFound)
	}

	return franchise, nil
}

func (s *FranchiseService) Create(ctx context.Context, claims domain.Claims, franchise domain.Franchise) (domain.Franchise, error) {
	if err := permission.RequireAdmin(claims); err != nil {
		return domain.Franchise{}, err
	}

	if err := s.checkUnique(ctx, franchise, ""); err != nil {
		return domain.Franchise{}, err
	}

	created, err := s.repo.Create(ctx, franchise)
	if err != nil {
		return domain.Franchise{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

func (s *FranchiseService) Update(ctx context.Context, claims domain.Claims, id string, update domain.FranchiseUpdate) (domain.Franchise, error) {
	franchise, err := s.Get(ctx, claims, id)
	if err != nil {
		return domain.Franchise{}, err
	}

	applyFranchiseUpdate(&franchise, update)

	if err = s.checkUnique(ctx, franchise, franchise.ID); err != nil {
		return domain.Franchise{}, err
	}

	updated, err := s.repo.Update(ctx, franchise)
	if err != nil {
		return domain.Franchise{}, translate(err, "s.repo.Update", ErrFranchiseNotFound)
	}

	return updated, nil
}

// Delete also removes the franchise's stock, commands and members.
func (s *FranchiseService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	if err := permission.RequireAdmin(claims); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrFranchiseNotFound)
	}

	return nil
}

func (s *FranchiseService) checkUnique(ctx context.Context, franchise domain.Franchise, selfID string) error {
	return checkAll(ctx,
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByName, franchiseID, franchise.Name, selfID, ErrFranchiseNameExists)
		},
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByEmail, franchiseID, franchise.Email, selfID, ErrFranchiseEmailExists)
		},
	)
}

func applyFranchiseUpdate(f *domain.Franchise, u domain.FranchiseUpdate) {
	if u.Name != nil {
		f.Name = *u.Name
	}
	if u.Address != nil {
		f.Address = *u.Address
	}
	if u.City != nil {
		f.City = *u.City
	}
	if u.ZipCode != nil {
		f.ZipCode = *u.ZipCode
	}
	if u.Country != nil {
		f.Country = *u.Country
	}
	if u.Latitude != nil {
		f.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		f.Longitude = *u.Longitude
	}
	if u.Phone != nil {
		f.Phone = *u.Phone
	}
	if u.Email != nil {
		f.Email = *u.Email
	}
}
