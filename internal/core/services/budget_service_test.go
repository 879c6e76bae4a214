package services_test

import (
	"context"
	"testing"

	"github.com/investia/investia_backend/internal/apperrors"
	"github.com/investia/investia_backend/internal/core/domain"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/core/services"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	service        portssvc.BudgetSvcFacade
	ctx            context.Context
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo)
	suite.ctx = context.Background()
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetYear_Success() {
	req := dto.CreateBudgetYearRequest{
		YearLabel:     " 2024/2025 ",
		OpeningCash:   decimal.NewFromInt(500),
		SavingsTarget: decimal.NewFromInt(50),
		SortOrder:     3,
	}
	suite.mockBudgetRepo.On("SaveBudgetYear", suite.ctx, mock.MatchedBy(func(y domain.BudgetYear) bool {
		return y.YearLabel == "2024/2025" && y.OpeningCash.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	year, err := suite.service.CreateBudgetYear(suite.ctx, req)

	suite.NoError(err)
	suite.Equal("2024/2025", year.YearLabel, "label should be trimmed")
	suite.Equal(3, year.SortOrder)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetYear_EmptyLabelRejected() {
	req := dto.CreateBudgetYearRequest{YearLabel: "   "}

	year, err := suite.service.CreateBudgetYear(suite.ctx, req)

	suite.Nil(year)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudgetYear", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry_AssignsIDAndValidatesType() {
	req := dto.CreateBudgetEntryRequest{
		YearLabel:    "2024/2025",
		CategoryName: "Food",
		BudgetType:   "semester1",
		Budget:       decimal.NewFromInt(100),
	}
	suite.mockBudgetRepo.On("SaveBudgetEntry", suite.ctx, mock.MatchedBy(func(e domain.BudgetEntry) bool {
		return e.EntryID != "" && e.CategoryName == "Food" && e.BudgetType == domain.BudgetTypeSemester1
	})).Return(nil).Once()

	entry, err := suite.service.CreateBudgetEntry(suite.ctx, req)

	suite.NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry_UnknownTypeRejected() {
	req := dto.CreateBudgetEntryRequest{
		YearLabel:    "2024/2025",
		CategoryName: "Food",
		BudgetType:   "quarterly",
	}

	entry, err := suite.service.CreateBudgetEntry(suite.ctx, req)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudgetEntry_PartialUpdateKeepsOtherFields() {
	current := &domain.BudgetEntry{
		EntryID:      "e1",
		YearLabel:    "2024/2025",
		CategoryName: "Food",
		BudgetType:   domain.BudgetTypeSemester1,
		Budget:       decimal.NewFromInt(100),
	}
	newBudget := decimal.NewFromInt(150)

	suite.mockBudgetRepo.On("FindBudgetEntryByID", suite.ctx, "e1").Return(current, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudgetEntry", suite.ctx, mock.MatchedBy(func(e domain.BudgetEntry) bool {
		return e.EntryID == "e1" && e.CategoryName == "Food" &&
			e.BudgetType == domain.BudgetTypeSemester1 && e.Budget.Equal(newBudget)
	})).Return(nil).Once()

	err := suite.service.UpdateBudgetEntry(suite.ctx, "e1", dto.UpdateBudgetEntryRequest{Budget: &newBudget})

	suite.NoError(err)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpdateBudgetEntry_NotFound() {
	suite.mockBudgetRepo.On("FindBudgetEntryByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UpdateBudgetEntry(suite.ctx, "missing", dto.UpdateBudgetEntryRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpdateBudgetEntry", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestListBudgetEntries_FiltersByType() {
	budgetType := domain.BudgetTypeIncome
	suite.mockBudgetRepo.On("FetchBudgetEntriesForType", suite.ctx, "2024/2025", budgetType).Return([]domain.BudgetEntry{
		{EntryID: "e1", BudgetType: domain.BudgetTypeIncome},
	}, nil).Once()

	entries, err := suite.service.ListBudgetEntries(suite.ctx, "2024/2025", &budgetType)

	suite.NoError(err)
	suite.Len(entries, 1)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "FetchBudgetEntries", mock.Anything, mock.Anything)
}
