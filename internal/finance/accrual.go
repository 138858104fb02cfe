// Package finance holds the pure ledger math: interest accrual, payment
// application, figure aggregation and role-based view sanitization. Nothing
// here touches storage or the clock; callers pass explicit dates.
package finance

import (
	"github.com/shopspring/decimal"

	"kassaBack/internal/models"
)

const (
	// graceDays is the interest-free window after origination or after a
	// payment before a new accrual period can start.
	graceDays = 7
	// periodDays is the length of one accrual period. Any day accrued into
	// a period charges for the whole period.
	periodDays = 30
)

type AccrualResult struct {
	InterestDue int64 `json:"interest_due"`
	PeriodsDue  int   `json:"periods_due"`
}

// accrualPeriods converts an elapsed day count into the number of completed
// or started accrual periods, after the grace window.
func accrualPeriods(elapsedDays int) int {
	elapsedDays -= graceDays
	if elapsedDays <= 0 {
		return 0
	}
	return (elapsedDays + periodDays - 1) / periodDays
}

// ComputeInterestDue returns the interest owed on an investment between its
// last settlement point and asOf. Periods are counted from origination so a
// payment never shifts the period grid; what the last payment already
// settled is subtracted out.
func ComputeInterestDue(inv models.Investment, asOf models.Date) AccrualResult {
	last := inv.LastPaymentDate
	if last.IsZero() {
		last = inv.Date
	}

	periodsDue := accrualPeriods(inv.Date.DaysUntil(asOf))
	if len(inv.Payments) > 0 {
		periodsDue -= accrualPeriods(inv.Date.DaysUntil(last))
	}
	if periodsDue < 0 {
		periodsDue = 0
	}

	rate := decimal.NewFromFloat(inv.MonthlyRate).Div(decimal.NewFromInt(100))
	due := decimal.NewFromInt(inv.PrincipalLeft).
		Mul(rate).
		Mul(decimal.NewFromInt(int64(periodsDue))).
		Round(0).
		IntPart()

	return AccrualResult{InterestDue: due, PeriodsDue: periodsDue}
}
