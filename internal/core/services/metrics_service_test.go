package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/investia/investia_backend/internal/core/domain"
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) ListBudgetYears(ctx context.Context) ([]domain.BudgetYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetYear), args.Error(1)
}

func (m *MockBudgetRepository) GetOpeningCash(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	args := m.Called(ctx, yearLabel)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBudgetRepository) GetSavingsTarget(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	args := m.Called(ctx, yearLabel)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBudgetRepository) FetchBudgetEntries(ctx context.Context, yearLabel string) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, yearLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) FetchBudgetEntriesForType(ctx context.Context, yearLabel string, budgetType domain.BudgetType) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, yearLabel, budgetType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetEntryByID(ctx context.Context, entryID string) (*domain.BudgetEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudgetYear(ctx context.Context, year domain.BudgetYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateOpeningCash(ctx context.Context, yearLabel string, openingCash decimal.Decimal) error {
	args := m.Called(ctx, yearLabel, openingCash)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateSavingsTarget(ctx context.Context, yearLabel string, savings decimal.Decimal) error {
	args := m.Called(ctx, yearLabel, savings)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudgetEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FetchTransactionsWithCategories(ctx context.Context, yearLabel string) ([]domain.Transaction, error) {
	args := m.Called(ctx, yearLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, categoryID *string) error {
	args := m.Called(ctx, txn, categoryID)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, categoryID *string) error {
	args := m.Called(ctx, txn, categoryID)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Mock WorkingCapitalRepository ---
type MockWorkingCapitalRepository struct {
	mock.Mock
}

var _ portsrepo.WorkingCapitalRepositoryFacade = (*MockWorkingCapitalRepository)(nil)

func (m *MockWorkingCapitalRepository) LoadWorkingCapital(ctx context.Context, yearLabel *string, kind domain.WorkingCapitalKind) ([]domain.WorkingCapitalEntry, error) {
	args := m.Called(ctx, yearLabel, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkingCapitalEntry), args.Error(1)
}

func (m *MockWorkingCapitalRepository) FindWorkingCapitalEntryByID(ctx context.Context, entryID string) (*domain.WorkingCapitalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkingCapitalEntry), args.Error(1)
}

func (m *MockWorkingCapitalRepository) SaveWorkingCapitalEntry(ctx context.Context, entry domain.WorkingCapitalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWorkingCapitalRepository) UpdateWorkingCapitalEntry(ctx context.Context, entry domain.WorkingCapitalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWorkingCapitalRepository) DeleteWorkingCapitalEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Test Suite ---
type MetricsServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockTxnRepo    *MockTransactionRepository
	mockWCRepo     *MockWorkingCapitalRepository
	service        portssvc.MetricsSvcFacade
	yearLabel      string
	ctx            context.Context
}

func (suite *MetricsServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockWCRepo = new(MockWorkingCapitalRepository)
	suite.service = services.NewMetricsService(suite.mockBudgetRepo, suite.mockTxnRepo, suite.mockWCRepo)
	suite.yearLabel = "2024/2025"
	suite.ctx = context.Background()
}

func TestMetricsService(t *testing.T) {
	suite.Run(t, new(MetricsServiceTestSuite))
}

func (suite *MetricsServiceTestSuite) TestComputeBudgetMetrics_EmptyYearYieldsZeros() {
	metrics, err := suite.service.ComputeBudgetMetrics(suite.ctx, "")

	suite.NoError(err)
	suite.True(metrics.OpeningCash.IsZero())
	suite.True(metrics.TotalIncome.IsZero())
	suite.True(metrics.TotalExpensesAll.IsZero())
	suite.True(metrics.FreeFloat.IsZero())
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "GetOpeningCash", mock.Anything, mock.Anything)
}

func (suite *MetricsServiceTestSuite) TestComputeBudgetMetrics_FreeFloatDerivation() {
	suite.mockBudgetRepo.On("GetOpeningCash", suite.ctx, suite.yearLabel).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockBudgetRepo.On("GetSavingsTarget", suite.ctx, suite.yearLabel).Return(decimal.NewFromInt(50), nil).Once()
	suite.mockBudgetRepo.On("FetchBudgetEntries", suite.ctx, suite.yearLabel).Return([]domain.BudgetEntry{
		{EntryID: "e1", YearLabel: suite.yearLabel, CategoryName: "Sponsoring", BudgetType: domain.BudgetTypeIncome, Budget: decimal.NewFromInt(300)},
		{EntryID: "e2", YearLabel: suite.yearLabel, CategoryName: "Events", BudgetType: domain.BudgetTypeSemester1, Budget: decimal.NewFromInt(100)},
		{EntryID: "e3", YearLabel: suite.yearLabel, CategoryName: "Events", BudgetType: domain.BudgetTypeSemester2, Budget: decimal.NewFromInt(50)},
		{EntryID: "e4", YearLabel: suite.yearLabel, CategoryName: "Insurance", BudgetType: domain.BudgetTypeYear, Budget: decimal.NewFromInt(30)},
	}, nil).Once()

	metrics, err := suite.service.ComputeBudgetMetrics(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.True(metrics.TotalIncome.Equal(decimal.NewFromInt(300)))
	suite.True(metrics.TotalExpensesSem1.Equal(decimal.NewFromInt(100)))
	suite.True(metrics.TotalExpensesSem2.Equal(decimal.NewFromInt(50)))
	suite.True(metrics.TotalExpensesYear.Equal(decimal.NewFromInt(30)))
	suite.True(metrics.TotalExpensesAll.Equal(decimal.NewFromInt(180)))
	// 500 + 300 - 180 - 50
	suite.True(metrics.FreeFloat.Equal(decimal.NewFromInt(570)))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestComputeBudgetMetrics_UnknownTypeCountsNowhere() {
	suite.mockBudgetRepo.On("GetOpeningCash", suite.ctx, suite.yearLabel).Return(decimal.Zero, nil).Once()
	suite.mockBudgetRepo.On("GetSavingsTarget", suite.ctx, suite.yearLabel).Return(decimal.Zero, nil).Once()
	suite.mockBudgetRepo.On("FetchBudgetEntries", suite.ctx, suite.yearLabel).Return([]domain.BudgetEntry{
		{EntryID: "e1", BudgetType: domain.BudgetType("quarterly"), Budget: decimal.NewFromInt(999)},
	}, nil).Once()

	metrics, err := suite.service.ComputeBudgetMetrics(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.True(metrics.TotalIncome.IsZero())
	suite.True(metrics.TotalExpensesAll.IsZero())
	suite.True(metrics.FreeFloat.IsZero())
}

func (suite *MetricsServiceTestSuite) TestComputeWorkingCapitalMetrics_NWCIdentity() {
	member := domain.DetailMember
	sponsor := domain.DetailSponsor

	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, &suite.yearLabel, domain.KindAR).Return([]domain.WorkingCapitalEntry{
		{EntryID: "ar1", Kind: domain.KindAR, KindDetail: &member, Amount: decimal.NewFromInt(120)},
		{EntryID: "ar2", Kind: domain.KindAR, KindDetail: &sponsor, Amount: decimal.NewFromInt(60)},
		{EntryID: "ar3", Kind: domain.KindAR, Amount: decimal.NewFromInt(20)}, // no detail
	}, nil).Once()
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, &suite.yearLabel, domain.KindAP).Return([]domain.WorkingCapitalEntry{
		{EntryID: "ap1", Kind: domain.KindAP, Amount: decimal.NewFromInt(30)},
	}, nil).Once()
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, (*string)(nil), domain.KindInventory).Return([]domain.WorkingCapitalEntry{
		{EntryID: "inv1", Kind: domain.KindInventory, Amount: decimal.NewFromInt(100)},
	}, nil).Once()

	metrics, err := suite.service.ComputeWorkingCapitalMetrics(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.True(metrics.TotalAR.Equal(decimal.NewFromInt(200)))
	suite.True(metrics.TotalARMember.Equal(decimal.NewFromInt(120)))
	suite.True(metrics.TotalARSponsor.Equal(decimal.NewFromInt(60)))
	suite.True(metrics.TotalAROther.IsZero())
	suite.True(metrics.TotalAP.Equal(decimal.NewFromInt(30)))
	suite.True(metrics.TotalInventory.Equal(decimal.NewFromInt(100)))
	// 200 + 100 - 30
	suite.True(metrics.NWC.Equal(decimal.NewFromInt(270)))
	suite.mockWCRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestComputeWorkingCapitalMetrics_InventoryIgnoresYear() {
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, &suite.yearLabel, domain.KindAR).Return([]domain.WorkingCapitalEntry{}, nil).Once()
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, &suite.yearLabel, domain.KindAP).Return([]domain.WorkingCapitalEntry{}, nil).Once()
	// Inventory must always be loaded without a year filter.
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, (*string)(nil), domain.KindInventory).Return([]domain.WorkingCapitalEntry{
		{EntryID: "inv1", Kind: domain.KindInventory, Amount: decimal.NewFromInt(40)},
	}, nil).Once()

	metrics, err := suite.service.ComputeWorkingCapitalMetrics(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.True(metrics.TotalInventory.Equal(decimal.NewFromInt(40)))
	suite.True(metrics.NWC.Equal(decimal.NewFromInt(40)))
	suite.mockWCRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestComputeDashboardData_NetSpendingJoin() {
	suite.mockBudgetRepo.On("FetchBudgetEntries", suite.ctx, suite.yearLabel).Return([]domain.BudgetEntry{
		{EntryID: "e1", CategoryName: "Food", BudgetType: domain.BudgetTypeSemester1, Budget: decimal.NewFromInt(100)},
		{EntryID: "e2", CategoryName: "Travel", BudgetType: domain.BudgetTypeYear, Budget: decimal.NewFromInt(200)},
		{EntryID: "e3", CategoryName: "Sponsoring", BudgetType: domain.BudgetTypeIncome, Budget: decimal.NewFromInt(500)},
	}, nil).Once()
	suite.mockTxnRepo.On("FetchTransactionsWithCategories", suite.ctx, suite.yearLabel).Return([]domain.Transaction{
		{TransactionID: "t1", Category: "Food", Amount: decimal.NewFromInt(20), IsExpense: true},
		{TransactionID: "t2", Category: "Food", Amount: decimal.NewFromInt(5), IsExpense: false}, // refund
		{TransactionID: "t3", Category: "Merch", Amount: decimal.NewFromInt(40), IsExpense: true},
	}, nil).Once()

	rows, err := suite.service.ComputeDashboardData(suite.ctx, suite.yearLabel, domain.PeriodEverything)

	suite.NoError(err)
	suite.Len(rows, 2, "income entries must never appear on the dashboard")

	suite.Equal("Food", rows[0].Category)
	suite.True(rows[0].NetSpending.Equal(decimal.NewFromInt(15)))
	suite.True(rows[0].Remaining.Equal(decimal.NewFromInt(85)))

	suite.Equal("Travel", rows[1].Category)
	suite.True(rows[1].NetSpending.IsZero())
	suite.True(rows[1].Remaining.Equal(decimal.NewFromInt(200)))
}

func (suite *MetricsServiceTestSuite) TestComputeDashboardData_PeriodFilter() {
	suite.mockBudgetRepo.On("FetchBudgetEntries", suite.ctx, suite.yearLabel).Return([]domain.BudgetEntry{
		{EntryID: "e1", CategoryName: "Food", BudgetType: domain.BudgetTypeSemester1, Budget: decimal.NewFromInt(100)},
		{EntryID: "e2", CategoryName: "Travel", BudgetType: domain.BudgetTypeSemester2, Budget: decimal.NewFromInt(200)},
	}, nil).Once()
	suite.mockTxnRepo.On("FetchTransactionsWithCategories", suite.ctx, suite.yearLabel).Return([]domain.Transaction{}, nil).Once()

	rows, err := suite.service.ComputeDashboardData(suite.ctx, suite.yearLabel, domain.PeriodSem1)

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal("Food", rows[0].Category)
}

func (suite *MetricsServiceTestSuite) TestComputeDashboardData_NoMatchingEntriesSkipsTransactions() {
	suite.mockBudgetRepo.On("FetchBudgetEntries", suite.ctx, suite.yearLabel).Return([]domain.BudgetEntry{
		{EntryID: "e1", CategoryName: "Sponsoring", BudgetType: domain.BudgetTypeIncome, Budget: decimal.NewFromInt(500)},
	}, nil).Once()

	rows, err := suite.service.ComputeDashboardData(suite.ctx, suite.yearLabel, domain.PeriodEverything)

	suite.NoError(err)
	suite.Empty(rows)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FetchTransactionsWithCategories", mock.Anything, mock.Anything)
}

func (suite *MetricsServiceTestSuite) TestComputeCashFlowEvolution_DailyCumulativeSeries() {
	day2 := time.Date(2025, 1, 2, 14, 30, 0, 0, time.UTC)
	day3 := time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)

	suite.mockBudgetRepo.On("GetOpeningCash", suite.ctx, suite.yearLabel).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockTxnRepo.On("FetchTransactionsWithCategories", suite.ctx, suite.yearLabel).Return([]domain.Transaction{
		{TransactionID: "t1", TxnDate: day3, Amount: decimal.NewFromInt(30), IsExpense: true},
		{TransactionID: "t2", TxnDate: day2, Amount: decimal.NewFromInt(70), IsExpense: false},
		{TransactionID: "t3", TxnDate: day2, Amount: decimal.NewFromInt(20), IsExpense: true},
	}, nil).Once()

	points, err := suite.service.ComputeCashFlowEvolution(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.Len(points, 2)

	suite.Equal(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), points[0].Date)
	suite.True(points[0].Balance.Equal(decimal.NewFromInt(150))) // 100 + 70 - 20

	suite.Equal(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), points[1].Date)
	suite.True(points[1].Balance.Equal(decimal.NewFromInt(120))) // 150 - 30
}

func (suite *MetricsServiceTestSuite) TestComputeCashFlowEvolution_NoTransactionsFallback() {
	suite.mockBudgetRepo.On("GetOpeningCash", suite.ctx, suite.yearLabel).Return(decimal.NewFromInt(250), nil).Once()
	suite.mockTxnRepo.On("FetchTransactionsWithCategories", suite.ctx, suite.yearLabel).Return([]domain.Transaction{}, nil).Once()

	points, err := suite.service.ComputeCashFlowEvolution(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.Len(points, 1, "charts must never receive an empty series")
	suite.True(points[0].Balance.Equal(decimal.NewFromInt(250)))

	today := time.Now().UTC()
	suite.Equal(today.Year(), points[0].Date.Year())
	suite.Equal(today.YearDay(), points[0].Date.YearDay())
}

func (suite *MetricsServiceTestSuite) TestCurrentCashPosition_LastPointOfSeries() {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockBudgetRepo.On("GetOpeningCash", suite.ctx, suite.yearLabel).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockTxnRepo.On("FetchTransactionsWithCategories", suite.ctx, suite.yearLabel).Return([]domain.Transaction{
		{TransactionID: "t1", TxnDate: day, Amount: decimal.NewFromInt(25), IsExpense: true},
	}, nil).Once()

	position, err := suite.service.CurrentCashPosition(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	suite.True(position.Equal(decimal.NewFromInt(75)))
}

func (suite *MetricsServiceTestSuite) TestCashPositionWithNWC_AddsNetWorkingCapital() {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockBudgetRepo.On("GetOpeningCash", suite.ctx, suite.yearLabel).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockTxnRepo.On("FetchTransactionsWithCategories", suite.ctx, suite.yearLabel).Return([]domain.Transaction{
		{TransactionID: "t1", TxnDate: day, Amount: decimal.NewFromInt(25), IsExpense: true},
	}, nil).Once()
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, &suite.yearLabel, domain.KindAR).Return([]domain.WorkingCapitalEntry{
		{EntryID: "ar1", Kind: domain.KindAR, Amount: decimal.NewFromInt(50)},
	}, nil).Once()
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, &suite.yearLabel, domain.KindAP).Return([]domain.WorkingCapitalEntry{
		{EntryID: "ap1", Kind: domain.KindAP, Amount: decimal.NewFromInt(10)},
	}, nil).Once()
	suite.mockWCRepo.On("LoadWorkingCapital", suite.ctx, (*string)(nil), domain.KindInventory).Return([]domain.WorkingCapitalEntry{}, nil).Once()

	position, err := suite.service.CashPositionWithNWC(suite.ctx, suite.yearLabel)

	suite.NoError(err)
	// 75 cash + (50 AR - 10 AP) NWC
	suite.True(position.Equal(decimal.NewFromInt(115)))
}
