package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
	"github.com/kitnetmanager/kitnet-client/pkg/utils"
)

// Late fee rule: 2% fixed penalty plus 1% interest per 30-day month,
// pro-rated per calendar day elapsed. The divisor is a fixed 30 regardless
// of actual month length; that is the billing policy, not an approximation
// to be corrected here.
type Rates struct {
	PenaltyRate         decimal.Decimal
	MonthlyInterestRate decimal.Decimal
	InterestDivisorDays int
}

// DefaultRates returns the standard late-fee rates
func DefaultRates() Rates {
	return Rates{
		PenaltyRate:         decimal.NewFromFloat(0.02),
		MonthlyInterestRate: decimal.NewFromFloat(0.01),
		InterestDivisorDays: 30,
	}
}

// LateFeeBreakdown is the surcharge breakdown for an overdue payment.
// Total is the full amount due including the principal.
type LateFeeBreakdown struct {
	Principal decimal.Decimal `json:"principal"`
	Penalty   decimal.Decimal `json:"penalty"`
	Interest  decimal.Decimal `json:"interest"`
	Total     decimal.Decimal `json:"total"`
}

// ComputeLateFee computes the late-fee breakdown for a payment of 'principal'
// that is 'daysOverdue' calendar days past its due date, using the default
// rates. daysOverdue <= 0 means not overdue and yields a zero surcharge.
// A negative principal is a caller error and is rejected, not clamped.
func ComputeLateFee(principal decimal.Decimal, daysOverdue int) (LateFeeBreakdown, error) {
	return ComputeLateFeeWithRates(principal, daysOverdue, DefaultRates())
}

// ComputeLateFeeWithRates is ComputeLateFee with explicit rates.
//
// Penalty and interest are each rounded to 2 decimal places before the total
// is summed and rounded again. The component-wise rounding order is load
// bearing: downstream displays show the components, and their sum must equal
// the total shown next to them.
func ComputeLateFeeWithRates(principal decimal.Decimal, daysOverdue int, rates Rates) (LateFeeBreakdown, error) {
	if principal.IsNegative() {
		return LateFeeBreakdown{}, customError.WrapInvalidArgument("principal must not be negative")
	}

	if daysOverdue <= 0 {
		return LateFeeBreakdown{
			Principal: principal,
			Penalty:   decimal.Zero,
			Interest:  decimal.Zero,
			Total:     principal,
		}, nil
	}

	penalty := utils.Round2(principal.Mul(rates.PenaltyRate))

	dailyRate := rates.MonthlyInterestRate.Div(decimal.NewFromInt(int64(rates.InterestDivisorDays)))
	interest := utils.Round2(principal.Mul(dailyRate).Mul(decimal.NewFromInt(int64(daysOverdue))))

	total := utils.Round2(principal.Add(penalty).Add(interest))

	return LateFeeBreakdown{
		Principal: principal,
		Penalty:   penalty,
		Interest:  interest,
		Total:     total,
	}, nil
}

// DaysOverdue returns how many whole calendar days 'now' is past 'dueDate'.
// Both are normalized to midnight first so the time of day never changes the
// day count. Zero or negative means the payment is not overdue.
func DaysOverdue(dueDate, now time.Time) int {
	return utils.DaysBetween(dueDate, now)
}
