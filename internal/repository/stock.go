package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/repository/dao"
)

type StockDAO interface {
	Insert(ctx context.Context, stock dao.StockFranchise) (dao.StockFranchise, error)
	UpdateQuantity(ctx context.Context, id string, quantity float64) (dao.StockFranchise, error)
	FindByID(ctx context.Context, id string) (dao.StockFranchise, error)
	FindByFranchise(ctx context.Context, franchiseID string) ([]dao.StockFranchise, error)
	UpsertQuantities(ctx context.Context, franchiseID string, quantities map[string]float64) (int, error)
	Delete(ctx context.Context, id string) error
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) Create(ctx context.Context, stock domain.StockFranchise) (domain.StockFranchise, error) {
	created, err := r.dao.Insert(ctx, dao.StockFranchise{
		FranchiseID:  stock.FranchiseID,
		IngredientID: stock.IngredientID,
		Quantity:     stock.Quantity,
	})
	if err != nil {
		return domain.StockFranchise{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return stockToDomain(created), nil
}

func (r *StockRepository) UpdateQuantity(ctx context.Context, id string, quantity float64) (domain.StockFranchise, error) {
	updated, err := r.dao.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return domain.StockFranchise{}, fmt.Errorf("r.dao.UpdateQuantity -> %w", err)
	}

	return stockToDomain(updated), nil
}

func (r *StockRepository) FindByID(ctx context.Context, id string) (domain.StockFranchise, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.StockFranchise{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return stockToDomain(found), nil
}

func (r *StockRepository) FindByFranchise(ctx context.Context, franchiseID string) ([]domain.StockFranchise, error) {
	found, err := r.dao.FindByFranchise(ctx, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFranchise -> %w", err)
	}

	stocks := make([]domain.StockFranchise, 0, len(found))
	for _, s := range found {
		stocks = append(stocks, stockToDomain(s))
	}

	return stocks, nil
}

func (r *StockRepository) SetQuantities(ctx context.Context, franchiseID string, quantities map[string]float64) (int, error) {
	n, err := r.dao.UpsertQuantities(ctx, franchiseID, quantities)
	if err != nil {
		return 0, fmt.Errorf("r.dao.UpsertQuantities -> %w", err)
	}

	return n, nil
}

func (r *StockRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func stockToDomain(s dao.StockFranchise) domain.StockFranchise {
	stock := domain.StockFranchise{
		ID:           s.ID,
		FranchiseID:  s.FranchiseID,
		IngredientID: s.IngredientID,
		Quantity:     s.Quantity,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.Ingredient.ID != "" {
		ingredient := ingredientToDomain(s.Ingredient)
		stock.Ingredient = &ingredient
	}

	return stock
}
