package repositories

import (
	"context"
	"database/sql"

	"kassaBack/internal/models"
)

type MemberRepository interface {
	CreateMember(ctx context.Context, m models.Member) error
	GetMemberByID(ctx context.Context, id string) (models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	ListMembersWithCredentials(ctx context.Context) ([]models.Member, error)
	SetSession(ctx context.Context, memberID string, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
}

type MySQLMemberRepository struct {
	DB *sql.DB
}

func NewMySQLMemberRepository(db *sql.DB) *MySQLMemberRepository {
	return &MySQLMemberRepository{DB: db}
}

func (r *MySQLMemberRepository) CreateMember(ctx context.Context, m models.Member) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO members (id, name, role, access_code_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Role, m.AccessCodeHash, m.CreatedAt)
	return err
}

func (r *MySQLMemberRepository) GetMemberByID(ctx context.Context, id string) (models.Member, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT id, name, role, created_at FROM members WHERE id = ?`, id)
	var m models.Member
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Member{}, models.ErrMemberNotFound
	}
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// ListMembers returns all members without credential material, safe to hand
// to any authenticated viewer.
func (r *MySQLMemberRepository) ListMembers(ctx context.Context) ([]models.Member, error) {
	return r.listMembers(ctx, false)
}

// ListMembersWithCredentials includes the access code hashes. Used only by
// the sign-in flow; never serialize the result.
func (r *MySQLMemberRepository) ListMembersWithCredentials(ctx context.Context) ([]models.Member, error) {
	return r.listMembers(ctx, true)
}

func (r *MySQLMemberRepository) listMembers(ctx context.Context, withCredentials bool) ([]models.Member, error) {
	query := `SELECT id, name, role, created_at FROM members ORDER BY created_at, id`
	if withCredentials {
		query = `SELECT id, name, role, access_code_hash, created_at FROM members ORDER BY created_at, id`
	}
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if withCredentials {
			err = rows.Scan(&m.ID, &m.Name, &m.Role, &m.AccessCodeHash, &m.CreatedAt)
		} else {
			err = rows.Scan(&m.ID, &m.Name, &m.Role, &m.CreatedAt)
		}
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *MySQLMemberRepository) SetSession(ctx context.Context, memberID string, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO sessions (member_id, refresh_token, expires_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)`,
		memberID, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *MySQLMemberRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT s.member_id, m.role, s.refresh_token, s.expires_at
FROM sessions s
JOIN members m ON m.id = s.member_id
WHERE s.refresh_token = ?`, refreshToken)

	var s models.Session
	err := row.Scan(&s.MemberID, &s.Role, &s.RefreshToken, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}
