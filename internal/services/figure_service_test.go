package services

import (
	"context"
	"errors"
	"testing"

	"kassaBack/internal/models"
)

func TestCompanyFiguresCaching(t *testing.T) {
	invRepo := NewMockInvestmentRepository()
	memberRepo := NewMockMemberRepository(adminActor)
	cache := &MockFiguresCacheSpy{}
	svc := &FigureService{InvestmentRepo: invRepo, MemberRepo: memberRepo, Cache: cache}

	create := &InvestmentService{InvestmentRepo: invRepo, MemberRepo: memberRepo, Cache: cache}
	if _, err := create.CreateInvestment(context.Background(), adminActor, models.CreateInvestmentRequest{
		ProjectName: "Warehouse", Amount: 500_000, MonthlyRate: 5,
	}); err != nil {
		t.Fatalf("seed investment: %v", err)
	}

	asOf := models.Today()

	first, err := svc.CompanyFigures(context.Background(), asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalInvestments != 500_000 {
		t.Errorf("total investments: got %d, want 500000", first.TotalInvestments)
	}
	if cache.Sets != 1 {
		t.Errorf("expected figures to be cached, sets=%d", cache.Sets)
	}

	listCallsBefore := invRepo.ListCalls
	second, err := svc.CompanyFigures(context.Background(), asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Errorf("cached figures differ: %+v vs %+v", second, first)
	}
	if invRepo.ListCalls != listCallsBefore {
		t.Error("cached call should not hit the repository")
	}
}

func TestMemberFiguresUnknownMember(t *testing.T) {
	svc := &FigureService{
		InvestmentRepo: NewMockInvestmentRepository(),
		MemberRepo:     NewMockMemberRepository(),
	}
	_, err := svc.MemberFigures(context.Background(), "ghost", models.Today())
	if !errors.Is(err, models.ErrMemberNotFound) {
		t.Fatalf("got %v, want ErrMemberNotFound", err)
	}
}
