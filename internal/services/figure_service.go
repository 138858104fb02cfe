package services

import (
	"context"
	"log"

	"kassaBack/internal/finance"
	"kassaBack/internal/models"
	"kassaBack/internal/repositories"
)

type FigureService struct {
	InvestmentRepo repositories.InvestmentRepository
	MemberRepo     repositories.MemberRepository
	Cache          repositories.FiguresCache
}

// CompanyFigures returns the company-wide roll-up as of the given date.
// Results are cached per date until the next investment write.
func (s *FigureService) CompanyFigures(ctx context.Context, asOf models.Date) (models.Figures, error) {
	if s.Cache != nil {
		if fig, ok := s.Cache.Get(ctx, asOf); ok {
			return fig, nil
		}
	}

	invs, err := s.InvestmentRepo.ListInvestments(ctx)
	if err != nil {
		return models.Figures{}, err
	}
	fig := finance.ComputeCompanyFigures(invs, asOf)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, asOf, fig); err != nil {
			log.Printf("Warning: failed to cache company figures: %v", err)
		}
	}
	return fig, nil
}

// MemberFigures returns one member's pro-rata roll-up as of the given date.
func (s *FigureService) MemberFigures(ctx context.Context, memberID string, asOf models.Date) (models.Figures, error) {
	if _, err := s.MemberRepo.GetMemberByID(ctx, memberID); err != nil {
		return models.Figures{}, err
	}

	invs, err := s.InvestmentRepo.ListInvestments(ctx)
	if err != nil {
		return models.Figures{}, err
	}
	return finance.ComputeMemberFigures(memberID, invs, asOf), nil
}
