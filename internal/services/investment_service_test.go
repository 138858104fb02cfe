package services

import (
	"context"
	"errors"
	"testing"

	"kassaBack/internal/finance"
	"kassaBack/internal/models"
)

type MockInvestmentRepository struct {
	Investments map[string]models.Investment
	ListCalls   int
	Created     []models.Investment
}

func NewMockInvestmentRepository() *MockInvestmentRepository {
	return &MockInvestmentRepository{Investments: make(map[string]models.Investment)}
}

func (m *MockInvestmentRepository) CreateInvestment(_ context.Context, inv models.Investment) error {
	m.Investments[inv.ID] = inv
	m.Created = append(m.Created, inv)
	return nil
}

func (m *MockInvestmentRepository) GetInvestment(_ context.Context, id string) (models.Investment, error) {
	inv, ok := m.Investments[id]
	if !ok {
		return models.Investment{}, models.ErrInvestmentNotFound
	}
	return inv, nil
}

func (m *MockInvestmentRepository) ListInvestments(_ context.Context) ([]models.Investment, error) {
	m.ListCalls++
	invs := make([]models.Investment, 0, len(m.Investments))
	for _, inv := range m.Investments {
		invs = append(invs, inv)
	}
	return invs, nil
}

func (m *MockInvestmentRepository) RecordPayment(_ context.Context, id string, amount int64, date models.Date) (models.Investment, error) {
	inv, ok := m.Investments[id]
	if !ok {
		return models.Investment{}, models.ErrInvestmentNotFound
	}
	updated, err := finance.ApplyPayment(inv, amount, date)
	if err != nil {
		return models.Investment{}, err
	}
	m.Investments[id] = updated
	return updated, nil
}

type MockMemberRepository struct {
	Members  map[string]models.Member
	Sessions map[string]models.Session
}

func NewMockMemberRepository(members ...models.Member) *MockMemberRepository {
	repo := &MockMemberRepository{
		Members:  make(map[string]models.Member),
		Sessions: make(map[string]models.Session),
	}
	for _, m := range members {
		repo.Members[m.ID] = m
	}
	return repo
}

func (m *MockMemberRepository) CreateMember(_ context.Context, member models.Member) error {
	m.Members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) GetMemberByID(_ context.Context, id string) (models.Member, error) {
	member, ok := m.Members[id]
	if !ok {
		return models.Member{}, models.ErrMemberNotFound
	}
	member.AccessCodeHash = ""
	return member, nil
}

func (m *MockMemberRepository) ListMembers(_ context.Context) ([]models.Member, error) {
	members := make([]models.Member, 0, len(m.Members))
	for _, member := range m.Members {
		member.AccessCodeHash = ""
		members = append(members, member)
	}
	return members, nil
}

func (m *MockMemberRepository) ListMembersWithCredentials(_ context.Context) ([]models.Member, error) {
	members := make([]models.Member, 0, len(m.Members))
	for _, member := range m.Members {
		members = append(members, member)
	}
	return members, nil
}

func (m *MockMemberRepository) SetSession(_ context.Context, memberID string, session models.Session) error {
	session.MemberID = memberID
	m.Sessions[session.RefreshToken] = session
	return nil
}

func (m *MockMemberRepository) GetSessionByToken(_ context.Context, token string) (models.Session, error) {
	session, ok := m.Sessions[token]
	if !ok {
		return models.Session{}, models.ErrNoRecord
	}
	return session, nil
}

var (
	adminActor  = models.Member{ID: "admin-1", Name: "Aliya", Role: models.RoleAdmin}
	memberActor = models.Member{ID: "member-1", Name: "Marat", Role: models.RoleMember}
)

func newInvestmentService() (*InvestmentService, *MockInvestmentRepository, *MockMemberRepository, *MockFiguresCacheSpy) {
	invRepo := NewMockInvestmentRepository()
	memberRepo := NewMockMemberRepository(adminActor, memberActor)
	cache := &MockFiguresCacheSpy{}
	svc := &InvestmentService{InvestmentRepo: invRepo, MemberRepo: memberRepo, Cache: cache}
	return svc, invRepo, memberRepo, cache
}

// MockFiguresCacheSpy records cache traffic without storing anything.
type MockFiguresCacheSpy struct {
	Invalidations int
	Sets          int
	Stored        *models.Figures
}

func (c *MockFiguresCacheSpy) Get(_ context.Context, _ models.Date) (models.Figures, bool) {
	if c.Stored == nil {
		return models.Figures{}, false
	}
	return *c.Stored, true
}

func (c *MockFiguresCacheSpy) Set(_ context.Context, _ models.Date, fig models.Figures) error {
	c.Sets++
	c.Stored = &fig
	return nil
}

func (c *MockFiguresCacheSpy) Invalidate(_ context.Context) error {
	c.Invalidations++
	c.Stored = nil
	return nil
}

func TestCreateInvestment(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		svc, invRepo, _, _ := newInvestmentService()
		_, err := svc.CreateInvestment(context.Background(), memberActor, models.CreateInvestmentRequest{
			ProjectName: "Warehouse", Amount: 100_000, MonthlyRate: 10,
		})
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Fatalf("got %v, want ErrUnauthorized", err)
		}
		if len(invRepo.Created) != 0 {
			t.Error("nothing should be persisted on rejection")
		}
	})

	t.Run("oversubscribed stakes rejected", func(t *testing.T) {
		svc, _, _, _ := newInvestmentService()
		_, err := svc.CreateInvestment(context.Background(), adminActor, models.CreateInvestmentRequest{
			ProjectName: "Warehouse", Amount: 100_000, MonthlyRate: 10,
			Participants: []models.Participant{
				{MemberID: memberActor.ID, Amount: 80_000},
				{MemberID: adminActor.ID, Amount: 30_000},
			},
		})
		if !errors.Is(err, models.ErrInvalidInvestment) {
			t.Fatalf("got %v, want ErrInvalidInvestment", err)
		}
	})

	t.Run("creates with fresh balances and resolves responsible name", func(t *testing.T) {
		svc, invRepo, _, cache := newInvestmentService()
		inv, err := svc.CreateInvestment(context.Background(), adminActor, models.CreateInvestmentRequest{
			ProjectName:       "Warehouse",
			Amount:            100_000,
			MonthlyRate:       10,
			ResponsiblePerson: memberActor.ID,
			Participants:      []models.Participant{{MemberID: memberActor.ID, Amount: 100_000}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.PrincipalLeft != 100_000 || inv.InterestPaid != 0 || inv.CarryForwardInterest != 0 {
			t.Errorf("fresh balances wrong: %+v", inv)
		}
		if inv.Status != models.StatusOngoing {
			t.Errorf("status: got %s, want Ongoing", inv.Status)
		}
		if inv.ResponsiblePerson != memberActor.Name {
			t.Errorf("responsible person: got %q, want %q", inv.ResponsiblePerson, memberActor.Name)
		}
		if inv.ID == "" {
			t.Error("expected a generated id")
		}
		if len(invRepo.Created) != 1 {
			t.Fatalf("expected 1 persisted investment, got %d", len(invRepo.Created))
		}
		if cache.Invalidations != 1 {
			t.Errorf("expected figures cache invalidation, got %d", cache.Invalidations)
		}
	})
}

func TestRecordPayment(t *testing.T) {
	seed := func(t *testing.T, svc *InvestmentService) models.Investment {
		t.Helper()
		inv, err := svc.CreateInvestment(context.Background(), adminActor, models.CreateInvestmentRequest{
			ProjectName: "Warehouse", Amount: 1_000_000, MonthlyRate: 10,
		})
		if err != nil {
			t.Fatalf("seed investment: %v", err)
		}
		return inv
	}

	t.Run("non-admin rejected", func(t *testing.T) {
		svc, _, _, _ := newInvestmentService()
		inv := seed(t, svc)
		_, err := svc.RecordPayment(context.Background(), memberActor, inv.ID, models.RecordPaymentRequest{Amount: 100})
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Fatalf("got %v, want ErrUnauthorized", err)
		}
	})

	t.Run("non-positive amount rejected before storage", func(t *testing.T) {
		svc, invRepo, _, _ := newInvestmentService()
		inv := seed(t, svc)
		_, err := svc.RecordPayment(context.Background(), adminActor, inv.ID, models.RecordPaymentRequest{Amount: 0})
		if !errors.Is(err, models.ErrInvalidAmount) {
			t.Fatalf("got %v, want ErrInvalidAmount", err)
		}
		stored := invRepo.Investments[inv.ID]
		if len(stored.Payments) != 0 {
			t.Error("rejected payment must not reach the history")
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		svc, _, _, _ := newInvestmentService()
		inv := seed(t, svc)
		_, err := svc.RecordPayment(context.Background(), adminActor, inv.ID, models.RecordPaymentRequest{Amount: 100, Date: "10.02.2024"})
		if !errors.Is(err, models.ErrInvalidDate) {
			t.Fatalf("got %v, want ErrInvalidDate", err)
		}
	})

	t.Run("unknown investment", func(t *testing.T) {
		svc, _, _, _ := newInvestmentService()
		_, err := svc.RecordPayment(context.Background(), adminActor, "missing", models.RecordPaymentRequest{Amount: 100})
		if !errors.Is(err, models.ErrInvestmentNotFound) {
			t.Fatalf("got %v, want ErrInvestmentNotFound", err)
		}
	})

	t.Run("applies and invalidates cache", func(t *testing.T) {
		svc, _, _, cache := newInvestmentService()
		inv := seed(t, svc)
		cache.Invalidations = 0

		updated, err := svc.RecordPayment(context.Background(), adminActor, inv.ID, models.RecordPaymentRequest{Amount: 5_000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Payments) != 1 {
			t.Errorf("expected 1 payment in history, got %d", len(updated.Payments))
		}
		if cache.Invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.Invalidations)
		}
	})
}

func TestListForViewer(t *testing.T) {
	svc, _, _, _ := newInvestmentService()
	_, err := svc.CreateInvestment(context.Background(), adminActor, models.CreateInvestmentRequest{
		ProjectName: "Warehouse", Amount: 1_000_000, MonthlyRate: 10,
		Participants: []models.Participant{{MemberID: memberActor.ID, Amount: 1_000_000}},
	})
	if err != nil {
		t.Fatalf("seed investment: %v", err)
	}

	t.Run("member view is sanitized", func(t *testing.T) {
		dash, err := svc.ListForViewer(context.Background(), memberActor.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dash.Investments) != 1 {
			t.Fatalf("expected 1 view, got %d", len(dash.Investments))
		}
		view := dash.Investments[0]
		if view.ProjectName != "" || view.Participants != nil {
			t.Errorf("member view leaks admin fields: %+v", view)
		}
		if view.YourParticipation == nil || *view.YourParticipation != 1_000_000 {
			t.Errorf("your participation: got %v", view.YourParticipation)
		}
		// Sole participant at full stake sees the company figures.
		if dash.Personal != dash.Company {
			t.Errorf("personal %+v != company %+v", dash.Personal, dash.Company)
		}
	})

	t.Run("admin view carries participants", func(t *testing.T) {
		dash, err := svc.ListForViewer(context.Background(), adminActor.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		view := dash.Investments[0]
		if len(view.Participants) != 1 {
			t.Fatalf("admin should see participants, got %+v", view)
		}
		if view.Participants[0].Name != memberActor.Name {
			t.Errorf("participant name not resolved: %q", view.Participants[0].Name)
		}
	})

	t.Run("unknown viewer", func(t *testing.T) {
		_, err := svc.ListForViewer(context.Background(), "ghost")
		if !errors.Is(err, models.ErrMemberNotFound) {
			t.Fatalf("got %v, want ErrMemberNotFound", err)
		}
	})
}
