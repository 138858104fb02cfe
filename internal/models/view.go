package models

// ParticipantView is a participant entry with the member id resolved to a
// display name. Only admins ever see these.
type ParticipantView struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
}

// InvestmentView is a role-filtered projection of an Investment. Admin views
// carry the full participant list, the last payment date and the
// carry-forward balance; member views instead carry the viewer's own stake
// and the project total, and hide the project name.
type InvestmentView struct {
	ID                string           `json:"id"`
	ProjectName       string           `json:"project_name,omitempty"`
	Amount            int64            `json:"amount"`
	Date              Date             `json:"date"`
	ResponsiblePerson string           `json:"responsible_person"`
	ReturnDate        Date             `json:"return_date"`
	PrincipalLeft     int64            `json:"principal_left"`
	Status            InvestmentStatus `json:"status"`
	InterestPaid      int64            `json:"interest_paid"`
	MonthlyRate       float64          `json:"monthly_rate"`
	Payments          []PaymentRecord  `json:"payments"`

	// admin-only fields
	LastPaymentDate      *Date             `json:"last_payment_date,omitempty"`
	CarryForwardInterest *int64            `json:"carry_forward_interest,omitempty"`
	Participants         []ParticipantView `json:"participants,omitempty"`

	// member-only fields
	YourParticipation  *int64 `json:"your_participation,omitempty"`
	TotalProjectAmount *int64 `json:"total_project_amount,omitempty"`
}
