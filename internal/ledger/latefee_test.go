package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kitnetmanager/kitnet-client/internal/ledger"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
)

func TestComputeLateFee(t *testing.T) {
	tests := []struct {
		name             string
		principal        decimal.Decimal
		daysOverdue      int
		expectedPenalty  decimal.Decimal
		expectedInterest decimal.Decimal
		expectedTotal    decimal.Decimal
	}{
		{
			name:             "not overdue - zero days",
			principal:        decimal.NewFromFloat(1000.00),
			daysOverdue:      0,
			expectedPenalty:  decimal.Zero,
			expectedInterest: decimal.Zero,
			expectedTotal:    decimal.NewFromFloat(1000.00),
		},
		{
			name:             "not overdue - negative days",
			principal:        decimal.NewFromFloat(1000.00),
			daysOverdue:      -5,
			expectedPenalty:  decimal.Zero,
			expectedInterest: decimal.Zero,
			expectedTotal:    decimal.NewFromFloat(1000.00),
		},
		{
			name:             "30 days overdue - one full month of interest",
			principal:        decimal.NewFromFloat(1000.00),
			daysOverdue:      30,
			expectedPenalty:  decimal.NewFromFloat(20.00),
			expectedInterest: decimal.NewFromFloat(10.00),
			expectedTotal:    decimal.NewFromFloat(1030.00),
		},
		{
			name:             "15 days overdue - half month pro-rated",
			principal:        decimal.NewFromFloat(500.00),
			daysOverdue:      15,
			expectedPenalty:  decimal.NewFromFloat(10.00),
			expectedInterest: decimal.NewFromFloat(2.50),
			expectedTotal:    decimal.NewFromFloat(512.50),
		},
		{
			name:             "single day overdue",
			principal:        decimal.NewFromFloat(900.00),
			daysOverdue:      1,
			expectedPenalty:  decimal.NewFromFloat(18.00),
			expectedInterest: decimal.NewFromFloat(0.30),
			expectedTotal:    decimal.NewFromFloat(918.30),
		},
		{
			name:             "zero principal",
			principal:        decimal.Zero,
			daysOverdue:      45,
			expectedPenalty:  decimal.Zero,
			expectedInterest: decimal.Zero,
			expectedTotal:    decimal.Zero,
		},
		{
			name:             "components round independently",
			principal:        decimal.NewFromFloat(777.77),
			daysOverdue:      7,
			expectedPenalty:  decimal.NewFromFloat(15.56),  // 15.5554 rounded
			expectedInterest: decimal.NewFromFloat(1.81),   // 1.814796... rounded
			expectedTotal:    decimal.NewFromFloat(795.14), // sum of rounded components
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := ledger.ComputeLateFee(tt.principal, tt.daysOverdue)

			assert.NoError(t, err)
			assert.True(t, breakdown.Principal.Equal(tt.principal),
				"principal: got %s", breakdown.Principal)
			assert.True(t, breakdown.Penalty.Equal(tt.expectedPenalty),
				"penalty: got %s, want %s", breakdown.Penalty, tt.expectedPenalty)
			assert.True(t, breakdown.Interest.Equal(tt.expectedInterest),
				"interest: got %s, want %s", breakdown.Interest, tt.expectedInterest)
			assert.True(t, breakdown.Total.Equal(tt.expectedTotal),
				"total: got %s, want %s", breakdown.Total, tt.expectedTotal)
		})
	}
}

func TestComputeLateFee_NegativePrincipal(t *testing.T) {
	_, err := ledger.ComputeLateFee(decimal.NewFromFloat(-100.00), 10)

	assert.Error(t, err)
	assert.ErrorIs(t, err, customError.ErrInvalidArgument)
}

func TestComputeLateFee_TotalIsMonotonicInDays(t *testing.T) {
	principal := decimal.NewFromFloat(1234.56)

	previous := decimal.Zero
	for days := -3; days <= 120; days++ {
		breakdown, err := ledger.ComputeLateFee(principal, days)
		assert.NoError(t, err)
		assert.True(t, breakdown.Total.GreaterThanOrEqual(previous),
			"total decreased at %d days: %s < %s", days, breakdown.Total, previous)
		previous = breakdown.Total
	}
}

func TestComputeLateFeeWithRates_CustomDivisor(t *testing.T) {
	rates := ledger.Rates{
		PenaltyRate:         decimal.NewFromFloat(0.10),
		MonthlyInterestRate: decimal.NewFromFloat(0.05),
		InterestDivisorDays: 10,
	}

	breakdown, err := ledger.ComputeLateFeeWithRates(decimal.NewFromFloat(200.00), 5, rates)

	assert.NoError(t, err)
	assert.True(t, breakdown.Penalty.Equal(decimal.NewFromFloat(20.00)))
	// 200 * (0.05/10) * 5 = 5.00
	assert.True(t, breakdown.Interest.Equal(decimal.NewFromFloat(5.00)))
	assert.True(t, breakdown.Total.Equal(decimal.NewFromFloat(225.00)))
}

func TestDaysOverdue(t *testing.T) {
	tests := []struct {
		name     string
		dueDate  time.Time
		now      time.Time
		expected int
	}{
		{
			name:     "due today is not overdue",
			dueDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
			now:      time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local),
			expected: 0,
		},
		{
			name:     "one day past due regardless of time of day",
			dueDate:  time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local),
			now:      time.Date(2024, 3, 11, 0, 30, 0, 0, time.Local),
			expected: 1,
		},
		{
			name:     "due in the future",
			dueDate:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local),
			now:      time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local),
			expected: -10,
		},
		{
			name:     "one month overdue",
			dueDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
			now:      time.Date(2020, 2, 1, 8, 15, 0, 0, time.Local),
			expected: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ledger.DaysOverdue(tt.dueDate, tt.now))
		})
	}
}

func TestDaysOverdue_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// Due on the 23-hour spring-forward day: overdue from the next day on
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, 0, ledger.DaysOverdue(due, time.Date(2024, 3, 10, 23, 0, 0, 0, loc)))
	assert.Equal(t, 1, ledger.DaysOverdue(due, time.Date(2024, 3, 11, 10, 0, 0, 0, loc)))
	assert.Equal(t, 31, ledger.DaysOverdue(due, time.Date(2024, 4, 10, 8, 0, 0, 0, loc)))
}
