package finance

import (
	"kassaBack/internal/models"
)

// ApplyPayment settles a payment against an investment and returns the
// updated copy. Interest (newly accrued plus carry-forward) is covered
// first; any remainder reduces principal, floored at zero. The input is
// never mutated.
//
// Payments against an Ended investment are rejected, as are payments dated
// before the last recorded payment, so the history stays chronological and
// an ended investment is never silently reopened.
func ApplyPayment(inv models.Investment, amount int64, date models.Date) (models.Investment, error) {
	if amount <= 0 {
		return models.Investment{}, models.ErrInvalidAmount
	}
	if inv.Status == models.StatusEnded {
		return models.Investment{}, models.ErrInvestmentEnded
	}
	if !inv.LastPaymentDate.IsZero() && date.Before(inv.LastPaymentDate) {
		return models.Investment{}, models.ErrPaymentBackdated
	}

	accrual := ComputeInterestDue(inv, date)
	totalOwed := accrual.InterestDue + inv.CarryForwardInterest

	if amount < totalOwed {
		inv.InterestPaid += amount
		inv.CarryForwardInterest = totalOwed - amount
	} else {
		inv.InterestPaid += totalOwed
		inv.CarryForwardInterest = 0
		remainder := amount - totalOwed
		inv.PrincipalLeft -= remainder
		if inv.PrincipalLeft < 0 {
			inv.PrincipalLeft = 0
		}
	}

	inv.LastPaymentDate = date
	if inv.PrincipalLeft == 0 && inv.CarryForwardInterest == 0 {
		inv.Status = models.StatusEnded
	}

	payments := make([]models.PaymentRecord, 0, len(inv.Payments)+1)
	payments = append(payments, inv.Payments...)
	inv.Payments = append(payments, models.PaymentRecord{Date: date, Amount: amount})

	return inv, nil
}
