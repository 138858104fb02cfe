package models

type InvestmentStatus string

const (
	StatusOngoing InvestmentStatus = "Ongoing"
	StatusEnded   InvestmentStatus = "Ended"
)

// Participant is a member's stake in an investment, expressed as an absolute
// amount. Stakes are fixed at creation; there is no partial withdrawal.
type Participant struct {
	MemberID string `json:"member_id"`
	Amount   int64  `json:"amount"`
}

// PaymentRecord is one entry of an investment's append-only payment history.
type PaymentRecord struct {
	Date   Date  `json:"date"`
	Amount int64 `json:"amount"`
}

// Investment is the single shared ledger for a pooled investment. All money
// fields are whole currency units.
type Investment struct {
	ID                   string           `json:"id"`
	ProjectName          string           `json:"project_name"`
	Amount               int64            `json:"amount"`
	Date                 Date             `json:"date"`
	ResponsiblePerson    string           `json:"responsible_person"`
	ReturnDate           Date             `json:"return_date"`
	MonthlyRate          float64          `json:"monthly_rate"`
	PrincipalLeft        int64            `json:"principal_left"`
	InterestPaid         int64            `json:"interest_paid"`
	CarryForwardInterest int64            `json:"carry_forward_interest"`
	LastPaymentDate      Date             `json:"last_payment_date"`
	Status               InvestmentStatus `json:"status"`
	Participants         []Participant    `json:"participants"`
	Payments             []PaymentRecord  `json:"payments"`
}

// ParticipantAmount returns the member's stake in the investment, 0 if the
// member does not participate.
func (inv Investment) ParticipantAmount(memberID string) int64 {
	for _, p := range inv.Participants {
		if p.MemberID == memberID {
			return p.Amount
		}
	}
	return 0
}

type CreateInvestmentRequest struct {
	ProjectName       string        `json:"project_name"`
	Amount            int64         `json:"amount"`
	ResponsiblePerson string        `json:"responsible_person"`
	ReturnDate        string        `json:"return_date"`
	MonthlyRate       float64       `json:"monthly_rate"`
	Participants      []Participant `json:"participants"`
}

type RecordPaymentRequest struct {
	Amount int64  `json:"amount"`
	Date   string `json:"date"`
}
