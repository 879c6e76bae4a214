package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/investia/investia_backend/internal/core/domain"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/investia/investia_backend/internal/handlers"
	"github.com/investia/investia_backend/internal/platform/config"
	"github.com/investia/investia_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MetricsService ---
type MockMetricsService struct {
	mock.Mock
}

var _ portssvc.MetricsSvcFacade = (*MockMetricsService)(nil)

func (m *MockMetricsService) ComputeBudgetMetrics(ctx context.Context, yearLabel string) (domain.BudgetMetrics, error) {
	args := m.Called(ctx, yearLabel)
	return args.Get(0).(domain.BudgetMetrics), args.Error(1)
}

func (m *MockMetricsService) ComputeWorkingCapitalMetrics(ctx context.Context, yearLabel string) (domain.WorkingCapitalMetrics, error) {
	args := m.Called(ctx, yearLabel)
	return args.Get(0).(domain.WorkingCapitalMetrics), args.Error(1)
}

func (m *MockMetricsService) ComputeDashboardData(ctx context.Context, yearLabel string, period domain.PeriodFilter) ([]domain.DashboardRow, error) {
	args := m.Called(ctx, yearLabel, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardRow), args.Error(1)
}

func (m *MockMetricsService) ComputeCashFlowEvolution(ctx context.Context, yearLabel string) ([]domain.CashFlowPoint, error) {
	args := m.Called(ctx, yearLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowPoint), args.Error(1)
}

func (m *MockMetricsService) CurrentCashPosition(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	args := m.Called(ctx, yearLabel)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMetricsService) CashPositionWithNWC(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	args := m.Called(ctx, yearLabel)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type MetricsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockMetricsService *MockMetricsService
	jwtSecret          string
}

func (suite *MetricsHandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT("treasurer", suite.jwtSecret, time.Hour, "investia-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *MetricsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockMetricsService = new(MockMetricsService)

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		LoginRateSpec: "10-M",
		IsProduction:  true, // skip swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		Metrics: suite.mockMetricsService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func TestMetricsHandler(t *testing.T) {
	suite.Run(t, new(MetricsHandlerTestSuite))
}

func (suite *MetricsHandlerTestSuite) TestGetBudgetMetrics_Success() {
	metrics := domain.ZeroBudgetMetrics()
	metrics.OpeningCash = decimal.NewFromInt(500)
	metrics.FreeFloat = decimal.NewFromInt(570)
	suite.mockMetricsService.On("ComputeBudgetMetrics", mock.Anything, "2024/2025").Return(metrics, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/budget?yearLabel=2024/2025", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BudgetMetricsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024/2025", resp.YearLabel)
	suite.True(resp.FreeFloat.Equal(decimal.NewFromInt(570)))
	suite.mockMetricsService.AssertExpectations(suite.T())
}

func (suite *MetricsHandlerTestSuite) TestGetBudgetMetrics_RequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/budget?yearLabel=2024/2025", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMetricsService.AssertNotCalled(suite.T(), "ComputeBudgetMetrics", mock.Anything, mock.Anything)
}

func (suite *MetricsHandlerTestSuite) TestGetDashboard_InvalidPeriodRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/dashboard?yearLabel=2024/2025&period=Quarterly", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMetricsService.AssertNotCalled(suite.T(), "ComputeDashboardData", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MetricsHandlerTestSuite) TestGetDashboard_DefaultsToEverything() {
	suite.mockMetricsService.On("ComputeDashboardData", mock.Anything, "2024/2025", domain.PeriodEverything).
		Return([]domain.DashboardRow{
			{Category: "Food", Budget: decimal.NewFromInt(100), NetSpending: decimal.NewFromInt(15), Remaining: decimal.NewFromInt(85), BudgetType: domain.BudgetTypeSemester1},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/dashboard?yearLabel=2024/2025", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Everything", resp.Period)
	suite.Len(resp.Rows, 1)
	suite.True(resp.Rows[0].Remaining.Equal(decimal.NewFromInt(85)))
	suite.mockMetricsService.AssertExpectations(suite.T())
}

func (suite *MetricsHandlerTestSuite) TestGetCashPosition_WithNWCFlag() {
	suite.mockMetricsService.On("CashPositionWithNWC", mock.Anything, "2024/2025").
		Return(decimal.NewFromInt(115), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/cash-position?yearLabel=2024/2025&withNWC=true", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CashPositionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.WithNWC)
	suite.True(resp.Position.Equal(decimal.NewFromInt(115)))
	suite.mockMetricsService.AssertNotCalled(suite.T(), "CurrentCashPosition", mock.Anything, mock.Anything)
}

func (suite *MetricsHandlerTestSuite) TestGetCashFlow_MissingYearRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/cash-flow", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}
