package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/franchise-api/internal/apperr"
	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
	"github.com/vietanh2810/franchise-api/internal/report"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

type stockMocks struct {
	stocks      *MockStockRepository
	franchises  *MockFranchiseRepository
	ingredients *MockIngredientRepository
}

func newStockService() (*StockService, stockMocks) {
	m := stockMocks{
		stocks:      new(MockStockRepository),
		franchises:  new(MockFranchiseRepository),
		ingredients: new(MockIngredientRepository),
	}

	return NewStockService(m.stocks, m.franchises, m.ingredients), m
}

func TestStockService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("admin must name a franchise", func(t *testing.T) {
		s, _ := newStockService()

		_, err := s.List(ctx, adminClaims(), "")
		assert.ErrorIs(t, err, permission.ErrFranchiseIDRequired)
	})

	t.Run("tenant gets its own franchise whatever it asks", func(t *testing.T) {
		s, m := newStockService()
		m.franchises.On("Exists", ctx, "F2").Return(true, nil)
		m.stocks.On("FindByFranchise", ctx, "F2").Return([]domain.StockFranchise{{ID: "S1", FranchiseID: "F2"}}, nil)

		got, err := s.List(ctx, tenantClaims("F2"), "F9")
		require.NoError(t, err)
		assert.Len(t, got, 1)
		m.stocks.AssertNotCalled(t, "FindByFranchise", mock.Anything, "F9")
	})
}

func TestStockService_Create(t *testing.T) {
	ctx := context.Background()
	stock := domain.StockFranchise{FranchiseID: "F1", IngredientID: "I1", Quantity: 3}

	t.Run("missing ingredient", func(t *testing.T) {
		s, m := newStockService()
		m.franchises.On("Exists", mock.Anything, "F1").Return(true, nil)
		m.ingredients.On("Exists", mock.Anything, "I1").Return(false, nil)

		_, err := s.Create(ctx, adminClaims(), stock)
		assert.ErrorIs(t, err, ErrIngredientNotFound)
		m.stocks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate pair is a conflict", func(t *testing.T) {
		s, m := newStockService()
		m.franchises.On("Exists", mock.Anything, "F1").Return(true, nil)
		m.ingredients.On("Exists", mock.Anything, "I1").Return(true, nil)
		m.stocks.On("Create", ctx, stock).Return(domain.StockFranchise{}, repository.ErrStockExists)

		_, err := s.Create(ctx, adminClaims(), stock)
		assert.ErrorIs(t, err, ErrStockExists)
		assert.Equal(t, 409, ErrStockExists.Status())
	})

	t.Run("tenant franchise wins over the body", func(t *testing.T) {
		s, m := newStockService()
		want := stock
		want.FranchiseID = "F2"
		m.franchises.On("Exists", mock.Anything, "F2").Return(true, nil)
		m.ingredients.On("Exists", mock.Anything, "I1").Return(true, nil)
		m.stocks.On("Create", ctx, want).Return(want, nil)

		got, err := s.Create(ctx, tenantClaims("F2"), stock)
		require.NoError(t, err)
		assert.Equal(t, "F2", got.FranchiseID)
	})
}

func TestStockService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("other franchise is forbidden", func(t *testing.T) {
		s, m := newStockService()
		m.stocks.On("FindByID", ctx, "S1").Return(domain.StockFranchise{ID: "S1", FranchiseID: "F9"}, nil)

		_, err := s.UpdateQuantity(ctx, tenantClaims("F2"), "S1", 4)
		assert.ErrorIs(t, err, permission.ErrForbiddenFranchise)
		m.stocks.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updated", func(t *testing.T) {
		s, m := newStockService()
		m.stocks.On("FindByID", ctx, "S1").Return(domain.StockFranchise{ID: "S1", FranchiseID: "F2"}, nil)
		m.stocks.On("UpdateQuantity", ctx, "S1", 4.0).Return(domain.StockFranchise{ID: "S1", FranchiseID: "F2", Quantity: 4}, nil)

		got, err := s.UpdateQuantity(ctx, tenantClaims("F2"), "S1", 4)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got.Quantity)
	})
}

func TestStockService_ExportImport(t *testing.T) {
	ctx := context.Background()
	franchise := domain.Franchise{ID: "F2", Name: "Lyon", City: "Lyon"}
	stocks := []domain.StockFranchise{
		{ID: "S1", FranchiseID: "F2", IngredientID: "I1", Quantity: 4, Ingredient: &domain.Ingredient{ID: "I1", Name: "Tomato", Unit: "kg", UnitPrice: 2}},
	}

	s, m := newStockService()
	m.franchises.On("FindByID", ctx, "F2").Return(franchise, nil)
	m.franchises.On("Exists", ctx, "F2").Return(true, nil)
	m.stocks.On("FindByFranchise", ctx, "F2").Return(stocks, nil)
	m.ingredients.On("FindByName", ctx, "Tomato").Return(*stocks[0].Ingredient, nil)
	m.stocks.On("SetQuantities", ctx, "F2", map[string]float64{"I1": 4}).Return(1, nil)

	var buf bytes.Buffer
	got, err := s.Export(ctx, tenantClaims("F2"), "", &buf)
	require.NoError(t, err)
	assert.Equal(t, franchise, got)

	n, err := s.Import(ctx, tenantClaims("F2"), "", &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStockService_Import_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not a workbook", func(t *testing.T) {
		s, m := newStockService()
		m.franchises.On("Exists", ctx, "F2").Return(true, nil)

		_, err := s.Import(ctx, tenantClaims("F2"), "", strings.NewReader("not a spreadsheet"))
		appErr, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_SPREADSHEET", appErr.Code)
		assert.Equal(t, 400, appErr.Status())
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		s, m := newStockService()
		m.franchises.On("Exists", ctx, "F2").Return(true, nil)
		m.ingredients.On("FindByName", ctx, "Saffron").Return(domain.Ingredient{}, repository.ErrNotFound)

		var buf bytes.Buffer
		require.NoError(t, report.WriteStock(&buf, domain.Franchise{Name: "Lyon"}, []domain.StockFranchise{
			{Quantity: 1, Ingredient: &domain.Ingredient{Name: "Saffron", Unit: "g"}},
		}))

		_, err := s.Import(ctx, tenantClaims("F2"), "", &buf)
		appErr, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, "UNKNOWN_INGREDIENT", appErr.Code)
		m.stocks.AssertNotCalled(t, "SetQuantities", mock.Anything, mock.Anything, mock.Anything)
	})
}
