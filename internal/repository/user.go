package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindAll(ctx context.Context, franchiseID string) ([]dao.User, error)
	AdminExists(ctx context.Context) (bool, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:       user.Email,
		Password:    user.Password,
		Name:        user.Name,
		Role:        user.Role,
		FranchiseID: user.FranchiseID,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindAll(ctx context.Context, franchiseID string) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	ok, err := r.dao.AdminExists(ctx)
	if err != nil {
		return false, fmt.Errorf("r.dao.AdminExists -> %w", err)
	}

	return ok, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		Name:        u.Name,
		Role:        u.Role,
		FranchiseID: u.FranchiseID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type SessionDAO interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token, err := r.dao.Create(ctx, userID, ttl)
	if err != nil {
		return "", fmt.Errorf("r.dao.Create -> %w", err)
	}

	return token, nil
}

func (r *SessionRepository) Consume(ctx context.Context, token string) (string, error) {
	userID, err := r.dao.Consume(ctx, token)
	if err != nil {
		return "", fmt.Errorf("r.dao.Consume -> %w", err)
	}

	return userID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.dao.Delete(ctx, token); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
