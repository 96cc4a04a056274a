package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

type MockFranchiseRepository struct {
	mock.Mock
}

func (m *MockFranchiseRepository) Create(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error) {
	args := m.Called(ctx, franchise)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) Update(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error) {
	args := m.Called(ctx, franchise)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindByID(ctx context.Context, id string) (domain.Franchise, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindByName(ctx context.Context, name string) (domain.Franchise, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindByEmail(ctx context.Context, email string) (domain.Franchise, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindAll(ctx context.Context) ([]domain.Franchise, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFranchiseRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient domain.Ingredient, newCategories []domain.Category) (domain.Ingredient, error) {
	args := m.Called(ctx, ingredient, newCategories)
	return args.Get(0).(domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Update(ctx context.Context, ingredient domain.Ingredient, replaceCategories bool) (domain.Ingredient, error) {
	args := m.Called(ctx, ingredient, replaceCategories)
	return args.Get(0).(domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByID(ctx context.Context, id string) (domain.Ingredient, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByName(ctx context.Context, name string) (domain.Ingredient, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindAll(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	args := m.Called(ctx, supplier)
	return args.Get(0).(domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	args := m.Called(ctx, supplier)
	return args.Get(0).(domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id string) (domain.Supplier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByName(ctx context.Context, name string) (domain.Supplier, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByEmail(ctx context.Context, email string) (domain.Supplier, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) Create(ctx context.Context, stock domain.StockFranchise) (domain.StockFranchise, error) {
	args := m.Called(ctx, stock)
	return args.Get(0).(domain.StockFranchise), args.Error(1)
}

func (m *MockStockRepository) UpdateQuantity(ctx context.Context, id string, quantity float64) (domain.StockFranchise, error) {
	args := m.Called(ctx, id, quantity)
	return args.Get(0).(domain.StockFranchise), args.Error(1)
}

func (m *MockStockRepository) FindByID(ctx context.Context, id string) (domain.StockFranchise, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.StockFranchise), args.Error(1)
}

func (m *MockStockRepository) FindByFranchise(ctx context.Context, franchiseID string) ([]domain.StockFranchise, error) {
	args := m.Called(ctx, franchiseID)
	return args.Get(0).([]domain.StockFranchise), args.Error(1)
}

func (m *MockStockRepository) SetQuantities(ctx context.Context, franchiseID string, quantities map[string]float64) (int, error) {
	args := m.Called(ctx, franchiseID, quantities)
	return args.Int(0), args.Error(1)
}

func (m *MockStockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCommandRepository struct {
	mock.Mock
}

func (m *MockCommandRepository) Create(ctx context.Context, command domain.Command) (domain.Command, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(domain.Command), args.Error(1)
}

func (m *MockCommandRepository) FindByID(ctx context.Context, id string) (domain.Command, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Command), args.Error(1)
}

func (m *MockCommandRepository) FindAll(ctx context.Context, filter domain.CommandFilter) ([]domain.Command, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Command), args.Error(1)
}

func (m *MockCommandRepository) UpdateStatus(ctx context.Context, id string, from, to domain.CommandStatus) (domain.Command, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(domain.Command), args.Error(1)
}

func (m *MockCommandRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCommandEvents struct {
	mock.Mock
}

func (m *MockCommandEvents) PublishStatus(ctx context.Context, event domain.CommandStatusEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockCommandEvents) SubscribeStatus(ctx context.Context, commandID string) (<-chan domain.CommandStatusEvent, error) {
	args := m.Called(ctx, commandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.CommandStatusEvent), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, franchiseID string) ([]domain.User, error) {
	args := m.Called(ctx, franchiseID)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) AdminExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) Consume(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func adminClaims() domain.Claims {
	return domain.Claims{Subject: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func tenantClaims(franchiseID string) domain.Claims {
	return domain.Claims{Subject: "user-1", Email: "user@example.com", Role: domain.RoleManager, FranchiseID: &franchiseID}
}
