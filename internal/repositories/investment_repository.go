package repositories

import (
	"context"
	"database/sql"

	"kassaBack/internal/finance"
	"kassaBack/internal/models"
)

// InvestmentRepository is the persistence contract for investments. The
// store must guarantee at most one concurrent writer per investment when
// recording a payment; reads run unlocked.
type InvestmentRepository interface {
	CreateInvestment(ctx context.Context, inv models.Investment) error
	GetInvestment(ctx context.Context, id string) (models.Investment, error)
	ListInvestments(ctx context.Context) ([]models.Investment, error)
	RecordPayment(ctx context.Context, id string, amount int64, date models.Date) (models.Investment, error)
}

type MySQLInvestmentRepository struct {
	DB *sql.DB
}

func NewMySQLInvestmentRepository(db *sql.DB) *MySQLInvestmentRepository {
	return &MySQLInvestmentRepository{DB: db}
}

const investmentColumns = `id, project_name, amount, date, responsible_person, return_date,
	monthly_rate, principal_left, interest_paid, carry_forward_interest, last_payment_date, status`

func (r *MySQLInvestmentRepository) CreateInvestment(ctx context.Context, inv models.Investment) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO investments (`+investmentColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.ProjectName, inv.Amount, inv.Date, inv.ResponsiblePerson, nullableDate(inv.ReturnDate),
		inv.MonthlyRate, inv.PrincipalLeft, inv.InterestPaid, inv.CarryForwardInterest,
		inv.LastPaymentDate, inv.Status)
	if err != nil {
		return err
	}

	for i, p := range inv.Participants {
		_, err = tx.ExecContext(ctx, `
INSERT INTO participants (investment_id, member_id, amount, position) VALUES (?, ?, ?, ?)`,
			inv.ID, p.MemberID, p.Amount, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *MySQLInvestmentRepository) GetInvestment(ctx context.Context, id string) (models.Investment, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = ?`, id)
	inv, err := scanInvestment(row)
	if err == sql.ErrNoRows {
		return models.Investment{}, models.ErrInvestmentNotFound
	}
	if err != nil {
		return models.Investment{}, err
	}

	inv.Participants, err = r.loadParticipants(ctx, r.DB, id)
	if err != nil {
		return models.Investment{}, err
	}
	inv.Payments, err = r.loadPayments(ctx, r.DB, id)
	if err != nil {
		return models.Investment{}, err
	}
	return inv, nil
}

func (r *MySQLInvestmentRepository) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+investmentColumns+` FROM investments ORDER BY date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []models.Investment
	index := make(map[string]int)
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		index[inv.ID] = len(invs)
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(invs) == 0 {
		return invs, nil
	}

	pRows, err := r.DB.QueryContext(ctx, `
SELECT investment_id, member_id, amount FROM participants ORDER BY investment_id, position`)
	if err != nil {
		return nil, err
	}
	defer pRows.Close()
	for pRows.Next() {
		var invID string
		var p models.Participant
		if err := pRows.Scan(&invID, &p.MemberID, &p.Amount); err != nil {
			return nil, err
		}
		if i, ok := index[invID]; ok {
			invs[i].Participants = append(invs[i].Participants, p)
		}
	}
	if err := pRows.Err(); err != nil {
		return nil, err
	}

	payRows, err := r.DB.QueryContext(ctx, `
SELECT investment_id, paid_on, amount FROM payments ORDER BY investment_id, position`)
	if err != nil {
		return nil, err
	}
	defer payRows.Close()
	for payRows.Next() {
		var invID string
		var pm models.PaymentRecord
		if err := payRows.Scan(&invID, &pm.Date, &pm.Amount); err != nil {
			return nil, err
		}
		if i, ok := index[invID]; ok {
			invs[i].Payments = append(invs[i].Payments, pm)
		}
	}
	if err := payRows.Err(); err != nil {
		return nil, err
	}

	return invs, nil
}

// RecordPayment applies a payment inside one transaction. The investment row
// is re-read with FOR UPDATE so two admins paying the same investment
// serialize instead of overwriting each other's balances.
func (r *MySQLInvestmentRepository) RecordPayment(ctx context.Context, id string, amount int64, date models.Date) (models.Investment, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Investment{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = ? FOR UPDATE`, id)
	inv, err := scanInvestment(row)
	if err == sql.ErrNoRows {
		return models.Investment{}, models.ErrInvestmentNotFound
	}
	if err != nil {
		return models.Investment{}, err
	}

	inv.Participants, err = r.loadParticipants(ctx, tx, id)
	if err != nil {
		return models.Investment{}, err
	}
	inv.Payments, err = r.loadPayments(ctx, tx, id)
	if err != nil {
		return models.Investment{}, err
	}

	updated, err := finance.ApplyPayment(inv, amount, date)
	if err != nil {
		return models.Investment{}, err
	}

	_, err = tx.ExecContext(ctx, `
UPDATE investments
SET principal_left = ?, interest_paid = ?, carry_forward_interest = ?, last_payment_date = ?, status = ?
WHERE id = ?`,
		updated.PrincipalLeft, updated.InterestPaid, updated.CarryForwardInterest,
		updated.LastPaymentDate, updated.Status, id)
	if err != nil {
		return models.Investment{}, err
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO payments (investment_id, paid_on, amount, position) VALUES (?, ?, ?, ?)`,
		id, date, amount, len(inv.Payments))
	if err != nil {
		return models.Investment{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Investment{}, err
	}
	return updated, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *MySQLInvestmentRepository) loadParticipants(ctx context.Context, q querier, invID string) ([]models.Participant, error) {
	rows, err := q.QueryContext(ctx, `
SELECT member_id, amount FROM participants WHERE investment_id = ? ORDER BY position`, invID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.MemberID, &p.Amount); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *MySQLInvestmentRepository) loadPayments(ctx context.Context, q querier, invID string) ([]models.PaymentRecord, error) {
	rows, err := q.QueryContext(ctx, `
SELECT paid_on, amount FROM payments WHERE investment_id = ? ORDER BY position`, invID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.PaymentRecord
	for rows.Next() {
		var pm models.PaymentRecord
		if err := rows.Scan(&pm.Date, &pm.Amount); err != nil {
			return nil, err
		}
		payments = append(payments, pm)
	}
	return payments, rows.Err()
}

func scanInvestment(scanner interface{ Scan(dest ...any) error }) (models.Investment, error) {
	var inv models.Investment
	var status string
	err := scanner.Scan(&inv.ID, &inv.ProjectName, &inv.Amount, &inv.Date, &inv.ResponsiblePerson,
		&inv.ReturnDate, &inv.MonthlyRate, &inv.PrincipalLeft, &inv.InterestPaid,
		&inv.CarryForwardInterest, &inv.LastPaymentDate, &status)
	if err != nil {
		return models.Investment{}, err
	}
	inv.Status = models.InvestmentStatus(status)
	return inv, nil
}

func nullableDate(d models.Date) any {
	if d.IsZero() {
		return nil
	}
	return d
}
