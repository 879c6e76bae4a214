package domain_test

import (
	"testing"

	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPeriodFilter_BudgetTypes(t *testing.T) {
	tests := []struct {
		name   string
		period domain.PeriodFilter
		want   []domain.BudgetType
	}{
		{
			name:   "everything covers all expense types",
			period: domain.PeriodEverything,
			want:   []domain.BudgetType{domain.BudgetTypeSemester1, domain.BudgetTypeSemester2, domain.BudgetTypeYear},
		},
		{
			name:   "sem1 only",
			period: domain.PeriodSem1,
			want:   []domain.BudgetType{domain.BudgetTypeSemester1},
		},
		{
			name:   "sem2 only",
			period: domain.PeriodSem2,
			want:   []domain.BudgetType{domain.BudgetTypeSemester2},
		},
		{
			name:   "year expenses only",
			period: domain.PeriodYearExpenses,
			want:   []domain.BudgetType{domain.BudgetTypeYear},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.period.BudgetTypes()
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, domain.BudgetTypeIncome, "income never appears on the dashboard")
		})
	}
}

func TestPeriodFilter_IsValid(t *testing.T) {
	assert.True(t, domain.PeriodEverything.IsValid())
	assert.True(t, domain.PeriodSem1.IsValid())
	assert.False(t, domain.PeriodFilter("Quarterly").IsValid())
	assert.False(t, domain.PeriodFilter("").IsValid())
}

func TestBudgetType_IsValid(t *testing.T) {
	assert.True(t, domain.BudgetTypeIncome.IsValid())
	assert.True(t, domain.BudgetTypeSemester2.IsValid())
	assert.False(t, domain.BudgetType("monthly").IsValid())
}

func TestWorkingCapitalKind_IsValid(t *testing.T) {
	assert.True(t, domain.KindAR.IsValid())
	assert.True(t, domain.KindInventory.IsValid())
	assert.False(t, domain.WorkingCapitalKind("ar").IsValid())
}
