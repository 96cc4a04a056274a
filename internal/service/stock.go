package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vietanh2810/franchise-api/internal/apperr"
	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
	"github.com/vietanh2810/franchise-api/internal/report"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

type StockRepository interface {
	Create(ctx context.Context, stock domain.StockFranchise) (domain.StockFranchise, error)
	UpdateQuantity(ctx context.Context, id string, quantity float64) (domain.StockFranchise, error)
	FindByID(ctx context.Context, id string) (domain.StockFranchise, error)
	FindByFranchise(ctx context.Context, franchiseID string) ([]domain.StockFranchise, error)
	SetQuantities(ctx context.Context, franchiseID string, quantities map[string]float64) (int, error)
	Delete(ctx context.Context, id string) error
}

type StockService struct {
	repo           StockRepository
	franchiseRepo  FranchiseRepository
	ingredientRepo IngredientRepository
}

func NewStockService(repo StockRepository, franchiseRepo FranchiseRepository, ingredientRepo IngredientRepository) *StockService {
	return &StockService{
		repo:           repo,
		franchiseRepo:  franchiseRepo,
		ingredientRepo: ingredientRepo,
	}
}

func (s *StockService) List(ctx context.Context, claims domain.Claims, requestedFranchiseID string) ([]domain.StockFranchise, error) {
	franchiseID, err := s.resolveFranchise(ctx, claims, requestedFranchiseID)
	if err != nil {
		return nil, err
	}

	stocks, err := s.repo.FindByFranchise(ctx, franchiseID)
	if err != nil {
		return nil, translate(err, "s.repo.FindByFranchise", nil)
	}

	return stocks, nil
}

func (s *StockService) Create(ctx context.Context, claims domain.Claims, stock domain.StockFranchise) (domain.StockFranchise, error) {
	franchiseID, err := resolveFranchiseID(claims, stock.FranchiseID)
	if err != nil {
		return domain.StockFranchise{}, err
	}
	stock.FranchiseID = franchiseID

	err = checkAll(ctx,
		func(ctx context.Context) error {
			return ensureExists(ctx, s.franchiseRepo.Exists, stock.FranchiseID, ErrFranchiseNotFound)
		},
		func(ctx context.Context) error {
			return ensureExists(ctx, s.ingredientRepo.Exists, stock.IngredientID, ErrIngredientNotFound)
		},
	)
	if err != nil {
		return domain.StockFranchise{}, err
	}

	created, err := s.repo.Create(ctx, stock)
	if err != nil {
		return domain.StockFranchise{}, translate(err, "s.repo.Create", nil)
	}

	return created, nil
}

func (s *StockService) Get(ctx context.Context, claims domain.Claims, id string) (domain.StockFranchise, error) {
	stock, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.StockFranchise{}, translate(err, "s.repo.FindByID", ErrStockNotFound)
	}

	if err = permission.ValidateFranchiseAccess(claims, stock.FranchiseID); err != nil {
		return domain.StockFranchise{}, err
	}

	return stock, nil
}

func (s *StockService) UpdateQuantity(ctx context.Context, claims domain.Claims, id string, quantity float64) (domain.StockFranchise, error) {
	if _, err := s.Get(ctx, claims, id); err != nil {
		return domain.StockFranchise{}, err
	}

	updated, err := s.repo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return domain.StockFranchise{}, translate(err, "s.repo.UpdateQuantity", ErrStockNotFound)
	}

	return updated, nil
}

func (s *StockService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	if _, err := s.Get(ctx, claims, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "s.repo.Delete", ErrStockNotFound)
	}

	return nil
}

// Export writes the franchise stock as an xlsx workbook and returns the franchise it covers.
func (s *StockService) Export(ctx context.Context, claims domain.Claims, requestedFranchiseID string, w io.Writer) (domain.Franchise, error) {
	franchiseID, err := resolveFranchiseID(claims, requestedFranchiseID)
	if err != nil {
		return domain.Franchise{}, err
	}

	franchise, err := s.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return domain.Franchise{}, translate(err, "s.franchiseRepo.FindByID", ErrFranchiseNotFound)
	}

	stocks, err := s.repo.FindByFranchise(ctx, franchiseID)
	if err != nil {
		return domain.Franchise{}, translate(err, "s.repo.FindByFranchise", nil)
	}

	if err = report.WriteStock(w, franchise, stocks); err != nil {
		return domain.Franchise{}, fmt.Errorf("report.WriteStock -> %w", err)
	}

	return franchise, nil
}

// Import sets the franchise stock from a spreadsheet in the Export layout.
// Rows name ingredients; an unknown name rejects the whole file.
func (s *StockService) Import(ctx context.Context, claims domain.Claims, requestedFranchiseID string, r io.Reader) (int, error) {
	franchiseID, err := s.resolveFranchise(ctx, claims, requestedFranchiseID)
	if err != nil {
		return 0, err
	}

	rows, err := report.ReadStock(r)
	if err != nil {
		if errors.Is(err, report.ErrInvalidSheet) {
			return 0, apperr.BadRequest("INVALID_SPREADSHEET", err.Error())
		}
		return 0, fmt.Errorf("report.ReadStock -> %w", err)
	}

	quantities := make(map[string]float64, len(rows))
	for _, row := range rows {
		ingredient, err := s.ingredientRepo.FindByName(ctx, row.Ingredient)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return 0, apperr.BadRequest("UNKNOWN_INGREDIENT", fmt.Sprintf("line %d: unknown ingredient %q", row.Line, row.Ingredient))
			}
			return 0, translate(err, "s.ingredientRepo.FindByName", nil)
		}
		quantities[ingredient.ID] = row.Quantity
	}

	n, err := s.repo.SetQuantities(ctx, franchiseID, quantities)
	if err != nil {
		return 0, translate(err, "s.repo.SetQuantities", nil)
	}

	return n, nil
}

func (s *StockService) resolveFranchise(ctx context.Context, claims domain.Claims, requestedID string) (string, error) {
	franchiseID, err := resolveFranchiseID(claims, requestedID)
	if err != nil {
		return "", err
	}

	if err = ensureExists(ctx, s.franchiseRepo.Exists, franchiseID, ErrFranchiseNotFound); err != nil {
		return "", err
	}

	return franchiseID, nil
}
