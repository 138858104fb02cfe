package finance

import (
	"kassaBack/internal/models"
)

// BuildNameDirectory maps member ids to display names for resolving
// participant entries in admin views.
func BuildNameDirectory(members []models.Member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

// SanitizeInvestmentForMember projects an investment into what the viewer is
// allowed to see. This is the single authority on field visibility; the
// presentation layer must never re-filter. The result is computed per
// viewer and must not be cached across viewers.
func SanitizeInvestmentForMember(inv models.Investment, viewer models.Member, names map[string]string) models.InvestmentView {
	payments := inv.Payments
	if payments == nil {
		payments = []models.PaymentRecord{}
	}

	view := models.InvestmentView{
		ID:                inv.ID,
		Amount:            inv.Amount,
		Date:              inv.Date,
		ResponsiblePerson: inv.ResponsiblePerson,
		ReturnDate:        inv.ReturnDate,
		PrincipalLeft:     inv.PrincipalLeft,
		Status:            inv.Status,
		InterestPaid:      inv.InterestPaid,
		MonthlyRate:       inv.MonthlyRate,
		Payments:          payments,
	}

	if viewer.IsAdmin() {
		view.ProjectName = inv.ProjectName
		last := inv.LastPaymentDate
		view.LastPaymentDate = &last
		carry := inv.CarryForwardInterest
		view.CarryForwardInterest = &carry
		view.Participants = make([]models.ParticipantView, 0, len(inv.Participants))
		for _, p := range inv.Participants {
			name, ok := names[p.MemberID]
			if !ok {
				name = p.MemberID
			}
			view.Participants = append(view.Participants, models.ParticipantView{
				MemberID: p.MemberID,
				Name:     name,
				Amount:   p.Amount,
			})
		}
		return view
	}

	yours := inv.ParticipantAmount(viewer.ID)
	view.YourParticipation = &yours
	total := inv.Amount
	view.TotalProjectAmount = &total
	return view
}
