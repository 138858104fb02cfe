package finance

import (
	"github.com/shopspring/decimal"

	"kassaBack/internal/models"
)

// ComputeCompanyFigures rolls all investments into the four company-wide
// dashboard numbers as of the given date.
func ComputeCompanyFigures(invs []models.Investment, asOf models.Date) models.Figures {
	var fig models.Figures
	for _, inv := range invs {
		fig.TotalInvestments += inv.Amount
		fig.TotalEarnings += inv.InterestPaid
		if inv.Status == models.StatusOngoing {
			fig.CurrentInvested += inv.PrincipalLeft
		}
		accrual := ComputeInterestDue(inv, asOf)
		fig.ExpectedEOM += accrual.InterestDue + inv.CarryForwardInterest
	}
	return fig
}

// ComputeMemberFigures apportions the shared per-investment balances to one
// member by their fractional stake (stake amount over investment amount).
// Participants are not independent sub-ledgers; every figure is a pro-rata
// slice of the single shared state. Fractions stay in decimal form and each
// output is rounded once at the end.
func ComputeMemberFigures(memberID string, invs []models.Investment, asOf models.Date) models.Figures {
	var (
		currentInvested  decimal.Decimal
		expectedEOM      decimal.Decimal
		totalEarnings    decimal.Decimal
		totalInvestments int64
	)

	for _, inv := range invs {
		part := inv.ParticipantAmount(memberID)
		totalInvestments += part
		if part <= 0 || inv.Amount <= 0 {
			continue
		}

		frac := decimal.NewFromInt(part).Div(decimal.NewFromInt(inv.Amount))
		if inv.Status == models.StatusOngoing {
			currentInvested = currentInvested.Add(decimal.NewFromInt(inv.PrincipalLeft).Mul(frac))
		}

		accrual := ComputeInterestDue(inv, asOf)
		expectedEOM = expectedEOM.Add(decimal.NewFromInt(accrual.InterestDue + inv.CarryForwardInterest).Mul(frac))
		totalEarnings = totalEarnings.Add(decimal.NewFromInt(inv.InterestPaid).Mul(frac))
	}

	return models.Figures{
		CurrentInvested:  currentInvested.Round(0).IntPart(),
		TotalInvestments: totalInvestments,
		ExpectedEOM:      expectedEOM.Round(0).IntPart(),
		TotalEarnings:    totalEarnings.Round(0).IntPart(),
	}
}
