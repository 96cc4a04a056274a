package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
)

type CommandDAO interface {
	InsertWithItems(ctx context.Context, command dao.Command) (dao.Command, error)
	FindByID(ctx context.Context, id string) (dao.Command, error)
	FindAll(ctx context.Context, filter dao.CommandFilter) ([]dao.Command, error)
	UpdateStatus(ctx context.Context, id, from, to string) (dao.Command, error)
	Delete(ctx context.Context, id string) error
}

type CommandRepository struct {
	dao CommandDAO
}

func NewCommandRepository(dao CommandDAO) *CommandRepository {
	return &CommandRepository{
		dao: dao,
	}
}

func (r *CommandRepository) Create(ctx context.Context, command domain.Command) (domain.Command, error) {
	items := make([]dao.CommandIngredient, 0, len(command.Items))
	for _, item := range command.Items {
		items = append(items, dao.CommandIngredient{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	created, err := r.dao.InsertWithItems(ctx, dao.Command{
		FranchiseID: command.FranchiseID,
		UserID:      command.UserID,
		Status:      string(command.Status),
		Items:       items,
	})
	if err != nil {
		return domain.Command{}, fmt.Errorf("r.dao.InsertWithItems -> %w", err)
	}

	return commandToDomain(created), nil
}

func (r *CommandRepository) FindByID(ctx context.Context, id string) (domain.Command, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Command{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return commandToDomain(found), nil
}

func (r *CommandRepository) FindAll(ctx context.Context, filter domain.CommandFilter) ([]domain.Command, error) {
	found, err := r.dao.FindAll(ctx, dao.CommandFilter{
		FranchiseID: filter.FranchiseID,
		Status:      string(filter.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	commands := make([]domain.Command, 0, len(found))
	for _, c := range found {
		commands = append(commands, commandToDomain(c))
	}

	return commands, nil
}

func (r *CommandRepository) UpdateStatus(ctx context.Context, id string, from, to domain.CommandStatus) (domain.Command, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(from), string(to))
	if err != nil {
		return domain.Command{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return commandToDomain(updated), nil
}

func (r *CommandRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func commandToDomain(c dao.Command) domain.Command {
	items := make([]domain.CommandIngredient, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, domain.CommandIngredient{
			ID:           item.ID,
			CommandID:    item.CommandID,
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return domain.Command{
		ID:          c.ID,
		FranchiseID: c.FranchiseID,
		UserID:      c.UserID,
		Status:      domain.CommandStatus(c.Status),
		Items:       items,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
