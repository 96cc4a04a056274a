package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

type CommandRepository interface {
	Create(ctx context.Context, command domain.Command) (domain.Command, error)
	FindByID(ctx context.Context, id string) (domain.Command, error)
	FindAll(ctx context.Context, filter domain.CommandFilter) ([]domain.Command, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.CommandStatus) (domain.Command, error)
	Delete(ctx context.Context, id string) error
}

type CommandEvents interface {
	PublishStatus(ctx context.Context, event domain.CommandStatusEvent) error
	SubscribeStatus(ctx context.Context, commandID string) (<-chan domain.CommandStatusEvent, error)
}

type CommandService struct {
	repo           CommandRepository
	franchiseRepo  FranchiseRepository
	ingredientRepo IngredientRepository
	events         CommandEvents
	now            func() time.Time
}

func NewCommandService(repo CommandRepository, franchiseRepo FranchiseRepository, ingredientRepo IngredientRepository, events CommandEvents) *CommandService {
	return &CommandService{
		repo:           repo,
		franchiseRepo:  franchiseRepo,
		ingredientRepo: ingredientRepo,
		events:         events,
		now:            time.Now,
	}
}

// List returns the commands of one franchise. Administrators may omit the
// franchise to list every command.
func (s *CommandService) List(ctx context.Context, claims domain.Claims, requestedFranchiseID string, status domain.CommandStatus) ([]domain.Command, error) {
	filter := domain.CommandFilter{Status: status, FranchiseID: requestedFranchiseID}
	if !permission.IsAdmin(claims) {
		franchiseID, err := resolveFranchiseID(claims, requestedFranchiseID)
		if err != nil {
			return nil, err
		}
		filter.FranchiseID = franchiseID
	}

	commands, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, translate(err, "s.repo.FindAll", nil)
	}

	return commands, nil
}

func (s *CommandService) Get(ctx context.Context, claims domain.Claims, id string) (domain.Command, error) {
	command, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Command{}, translate(err, "s.repo.FindByID", ErrCommandNotFound)
	}

	if err = permission.ValidateFranchiseAccess(claims, command.FranchiseID); err != nil {
		return domain.Command{}, err
	}

	return command, nil
}

// Create checks the franchise and every ingredient, fills missing unit prices
// with the ingredient's current price and stores the command with its items atomically.
func (s *CommandService) Create(ctx context.Context, claims domain.Claims, input domain.CommandInput) (domain.Command, error) {
	franchiseID, err := resolveFranchiseID(claims, input.FranchiseID)
	if err != nil {
		return domain.Command{}, err
	}

	ids := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.IngredientID)
	}

	var ingredients []domain.Ingredient
	err = checkAll(ctx,
		func(ctx context.Context) error {
			return ensureExists(ctx, s.franchiseRepo.Exists, franchiseID, ErrFranchiseNotFound)
		},
		func(ctx context.Context) error {
			var err error
			ingredients, err = s.ingredientRepo.FindByIDs(ctx, ids)
			if err != nil {
				return translate(err, "s.ingredientRepo.FindByIDs", nil)
			}
			return nil
		},
	)
	if err != nil {
		return domain.Command{}, err
	}

	prices := make(map[string]float64, len(ingredients))
	for _, ingredient := range ingredients {
		prices[ingredient.ID] = ingredient.UnitPrice
	}

	command := domain.Command{
		FranchiseID: franchiseID,
		UserID:      claims.Subject,
		Status:      input.Status,
		Items:       make([]domain.CommandIngredient, 0, len(input.Items)),
	}
	if command.Status == "" {
		command.Status = domain.CommandDraft
	}
	for _, item := range input.Items {
		price, ok := prices[item.IngredientID]
		if !ok {
			return domain.Command{}, fmt.Errorf("ingredient %s -> %w", item.IngredientID, ErrIngredientNotFound)
		}
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		command.Items = append(command.Items, domain.CommandIngredient{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			UnitPrice:    price,
		})
	}

	created, err := s.repo.Create(ctx, command)
	if err != nil {
		return domain.Command{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

// UpdateStatus enforces the command lifecycle. Delivery adds the items to the
// franchise stock. Subscribers are notified once the change is stored.
func (s *CommandService) UpdateStatus(ctx context.Context, claims domain.Claims, id string, next domain.CommandStatus) (domain.Command, error) {
	command, err := s.Get(ctx, claims, id)
	if err != nil {
		return domain.Command{}, err
	}

	if !command.Status.CanTransitionTo(next) {
		return domain.Command{}, fmt.Errorf("%s -> %s: %w", command.Status, next, ErrInvalidStatusTransition)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, command.Status, next)
	if err != nil {
		if errors.Is(err, repository.ErrStatusChanged) {
			return domain.Command{}, fmt.Errorf("s.repo.UpdateStatus -> %w", ErrInvalidStatusTransition)
		}
		return domain.Command{}, translate(err, "s.repo.UpdateStatus", ErrCommandNotFound)
	}

	event := domain.CommandStatusEvent{
		CommandID:   updated.ID,
		FranchiseID: updated.FranchiseID,
		Status:      updated.Status,
		At:          s.now().UTC(),
	}
	if err = s.events.PublishStatus(ctx, event); err != nil {
		zap.L().Warn("failed to publish command status", zap.String("command_id", id), zap.Error(err))
	}

	return updated, nil
}

func (s *CommandService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	command, err := s.Get(ctx, claims, id)
	if err != nil {
		return err
	}

	if command.Status != domain.CommandDraft && command.Status != domain.CommandCanceled {
		return ErrCommandNotDeletable
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrCommandNotFound)
	}

	return nil
}

// Track returns the command as it is now and the stream of its later status
// changes. The stream ends when ctx is done.
func (s *CommandService) Track(ctx context.Context, claims domain.Claims, id string) (domain.Command, <-chan domain.CommandStatusEvent, error) {
	// Subscribe before reading so that a transition committed in between is
	// still delivered.
	subCtx, cancel := context.WithCancel(ctx)
	events, err := s.events.SubscribeStatus(subCtx, id)
	if err != nil {
		cancel()
		return domain.Command{}, nil, fmt.Errorf("s.events.SubscribeStatus -> %w", err)
	}

	command, err := s.Get(ctx, claims, id)
	if err != nil {
		cancel()
		return domain.Command{}, nil, err
	}

	context.AfterFunc(ctx, cancel)

	return command, events, nil
}
