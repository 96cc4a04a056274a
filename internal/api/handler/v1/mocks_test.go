package v1

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/franchise-api/internal/api/middleware"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (domain.Session, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockAuthService) RegisterAdmin(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockFranchiseService struct {
	mock.Mock
}

func (m *MockFranchiseService) List(ctx context.Context, claims domain.Claims) ([]domain.Franchise, error) {
	args := m.Called(ctx, claims)
	return args.Get(0).([]domain.Franchise), args.Error(1)
}

func (m *MockFranchiseService) Get(ctx context.Context, claims domain.Claims, id string) (domain.Franchise, error) {
	args := m.Called(ctx, claims, id)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseService) Create(ctx context.Context, claims domain.Claims, franchise domain.Franchise) (domain.Franchise, error) {
	args := m.Called(ctx, claims, franchise)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseService) Update(ctx context.Context, claims domain.Claims, id string, update domain.FranchiseUpdate) (domain.Franchise, error) {
	args := m.Called(ctx, claims, id, update)
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockFranchiseService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	return m.Called(ctx, claims, id).Error(0)
}

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) List(ctx context.Context, claims domain.Claims, franchiseID string) ([]domain.StockFranchise, error) {
	args := m.Called(ctx, claims, franchiseID)
	return args.Get(0).([]domain.StockFranchise), args.Error(1)
}

func (m *MockStockService) Get(ctx context.Context, claims domain.Claims, id string) (domain.StockFranchise, error) {
	args := m.Called(ctx, claims, id)
	return args.Get(0).(domain.StockFranchise), args.Error(1)
}

func (m *MockStockService) Create(ctx context.Context, claims domain.Claims, stock domain.StockFranchise) (domain.StockFranchise, error) {
	args := m.Called(ctx, claims, stock)
	return args.Get(0).(domain.StockFranchise), args.Error(1)
}

func (m *MockStockService) UpdateQuantity(ctx context.Context, claims domain.Claims, id string, quantity float64) (domain.StockFranchise, error) {
	args := m.Called(ctx, claims, id, quantity)
	return args.Get(0).(domain.StockFranchise), args.Error(1)
}

func (m *MockStockService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	return m.Called(ctx, claims, id).Error(0)
}

func (m *MockStockService) Export(ctx context.Context, claims domain.Claims, franchiseID string, w io.Writer) (domain.Franchise, error) {
	args := m.Called(ctx, claims, franchiseID, w)
	if _, err := io.WriteString(w, "xlsx-bytes"); err != nil {
		return domain.Franchise{}, err
	}
	return args.Get(0).(domain.Franchise), args.Error(1)
}

func (m *MockStockService) Import(ctx context.Context, claims domain.Claims, franchiseID string, r io.Reader) (int, error) {
	args := m.Called(ctx, claims, franchiseID, r)
	return args.Int(0), args.Error(1)
}

type MockCommandService struct {
	mock.Mock
}

func (m *MockCommandService) List(ctx context.Context, claims domain.Claims, franchiseID string, status domain.CommandStatus) ([]domain.Command, error) {
	args := m.Called(ctx, claims, franchiseID, status)
	return args.Get(0).([]domain.Command), args.Error(1)
}

func (m *MockCommandService) Get(ctx context.Context, claims domain.Claims, id string) (domain.Command, error) {
	args := m.Called(ctx, claims, id)
	return args.Get(0).(domain.Command), args.Error(1)
}

func (m *MockCommandService) Create(ctx context.Context, claims domain.Claims, input domain.CommandInput) (domain.Command, error) {
	args := m.Called(ctx, claims, input)
	return args.Get(0).(domain.Command), args.Error(1)
}

func (m *MockCommandService) UpdateStatus(ctx context.Context, claims domain.Claims, id string, status domain.CommandStatus) (domain.Command, error) {
	args := m.Called(ctx, claims, id, status)
	return args.Get(0).(domain.Command), args.Error(1)
}

func (m *MockCommandService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	return m.Called(ctx, claims, id).Error(0)
}

func (m *MockCommandService) Track(ctx context.Context, claims domain.Claims, id string) (domain.Command, <-chan domain.CommandStatusEvent, error) {
	args := m.Called(ctx, claims, id)
	if args.Get(1) == nil {
		return args.Get(0).(domain.Command), nil, args.Error(2)
	}
	return args.Get(0).(domain.Command), args.Get(1).(<-chan domain.CommandStatusEvent), args.Error(2)
}

const (
	franchiseID      = "2c1d6a0e-3b0f-4c6e-8a55-7e0a4f3b9c10"
	otherFranchiseID = "9e4b7c21-6d8a-4f3e-b1c2-5a0d8e7f6b43"
	ingredientID     = "6f1c1f43-5f0e-4e8e-9d2a-0b8f6a1f2c3d"
	stockID          = "4a8e2f60-1c7b-4d93-a5e6-0f2b9c8d7e14"
	commandID        = "8d3f5a12-7e6c-4b1a-9f08-2c4e6a8b0d35"
)

func adminClaims() domain.Claims {
	return domain.Claims{Subject: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func tenantClaims(franchiseID string) domain.Claims {
	return domain.Claims{Subject: "user-1", Email: "user@example.com", Role: domain.RoleManager, FranchiseID: &franchiseID}
}

// withClaims stands in for the authentication middleware.
func withClaims(claims domain.Claims) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		middleware.SetClaims(ctx, claims)
		ctx.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	return gin.New()
}
