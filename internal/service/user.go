package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context, franchiseID string) ([]domain.User, error)
	AdminExists(ctx context.Context) (bool, error)
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	repo          UserRepository
	franchiseRepo FranchiseRepository
}

func NewUserService(repo UserRepository, franchiseRepo FranchiseRepository) *UserService {
	return &UserService{
		repo:          repo,
		franchiseRepo: franchiseRepo,
	}
}

// List returns the members of a franchise. Administrators see every user when
// they do not name a franchise.
func (s *UserService) List(ctx context.Context, claims domain.Claims, requestedFranchiseID string) ([]domain.User, error) {
	franchiseID := requestedFranchiseID
	if !permission.IsAdmin(claims) {
		var err error
		if franchiseID, err = resolveFranchiseID(claims, requestedFranchiseID); err != nil {
			return nil, err
		}
	}

	users, err := s.repo.FindAll(ctx, franchiseID)
	if err != nil {
		return nil, translate(err, "s.repo.FindAll", nil)
	}

	return users, nil
}

func (s *UserService) Get(ctx context.Context, claims domain.Claims, id string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, translate(err, "s.repo.FindByID", ErrUserNotFound)
	}

	if err = permission.ValidateFranchiseAccess(claims, deref(user.FranchiseID)); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Create adds a member. Administrators may create other administrators, which
// never belong to a franchise. Tenant users only create non-admin members of
// their own franchise.
func (s *UserService) Create(ctx context.Context, claims domain.Claims, user domain.User) (domain.User, error) {
	requested := deref(user.FranchiseID)

	switch {
	case user.Role == domain.RoleAdmin && !permission.IsAdmin(claims):
		return domain.User{}, ErrRoleNotAllowed
	case user.Role == domain.RoleAdmin && requested != "":
		return domain.User{}, ErrAdminFranchise
	case user.Role == domain.RoleAdmin:
		user.FranchiseID = nil
	default:
		franchiseID, err := resolveFranchiseID(claims, requested)
		if err != nil {
			return domain.User{}, err
		}
		user.FranchiseID = &franchiseID
	}

	checks := []func(context.Context) error{
		func(ctx context.Context) error {
			return ensureUnique(ctx, s.repo.FindByEmail, userID, user.Email, "", ErrUserEmailExists)
		},
	}
	if user.FranchiseID != nil {
		checks = append(checks, func(ctx context.Context) error {
			return ensureExists(ctx, s.franchiseRepo.Exists, *user.FranchiseID, ErrFranchiseNotFound)
		})
	}
	if err := checkAll(ctx, checks...); err != nil {
		return domain.User{}, err
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashPassword -> %w", err)
	}
	user.Password = hash

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

func (s *UserService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	if id == claims.Subject {
		return ErrDeleteSelf
	}

	if _, err := s.Get(ctx, claims, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrUserNotFound)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func userID(u domain.User) string { return u.ID }

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
