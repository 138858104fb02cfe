package models

// Figures are the four roll-up numbers shown on the dashboard, either
// company-wide or apportioned to a single member. All values are whole
// currency units, rounded once at the end of aggregation.
type Figures struct {
	CurrentInvested  int64 `json:"current_invested"`
	TotalInvestments int64 `json:"total_investments"`
	ExpectedEOM      int64 `json:"expected_eom"`
	TotalEarnings    int64 `json:"total_earnings"`
}

// Dashboard is the payload of the investment listing endpoint: personal and
// company figures as of today plus role-sanitized investment views.
type Dashboard struct {
	Personal    Figures          `json:"personal"`
	Company     Figures          `json:"company"`
	Investments []InvestmentView `json:"investments"`
	Members     []Member         `json:"members"`
}
