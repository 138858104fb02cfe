package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"kassaBack/internal/finance"
	"kassaBack/internal/metrics"
	"kassaBack/internal/models"
	"kassaBack/internal/repositories"
)

type InvestmentService struct {
	InvestmentRepo repositories.InvestmentRepository
	MemberRepo     repositories.MemberRepository
	Cache          repositories.FiguresCache
}

// CreateInvestment opens a new investment with its participant stakes.
// Admin only. The origination date is always today; balances start at the
// committed amount with no interest accrued.
func (s *InvestmentService) CreateInvestment(ctx context.Context, actor models.Member, req models.CreateInvestmentRequest) (models.Investment, error) {
	if !actor.IsAdmin() {
		return models.Investment{}, models.ErrUnauthorized
	}
	if req.Amount <= 0 || req.MonthlyRate < 0 {
		return models.Investment{}, models.ErrInvalidInvestment
	}

	var stakeSum int64
	for _, p := range req.Participants {
		if p.Amount <= 0 || p.MemberID == "" {
			return models.Investment{}, models.ErrInvalidInvestment
		}
		stakeSum += p.Amount
	}
	if stakeSum > req.Amount {
		return models.Investment{}, models.ErrInvalidInvestment
	}

	var returnDate models.Date
	if req.ReturnDate != "" {
		var err error
		returnDate, err = models.ParseDate(req.ReturnDate)
		if err != nil {
			return models.Investment{}, models.ErrInvalidDate
		}
	}

	// The request may carry a member id as the responsible person; resolve
	// it to a display name when it matches one.
	responsible := req.ResponsiblePerson
	if member, err := s.MemberRepo.GetMemberByID(ctx, responsible); err == nil {
		responsible = member.Name
	} else if err != models.ErrMemberNotFound {
		return models.Investment{}, err
	}

	today := models.Today()
	inv := models.Investment{
		ID:                uuid.New().String(),
		ProjectName:       req.ProjectName,
		Amount:            req.Amount,
		Date:              today,
		ResponsiblePerson: responsible,
		ReturnDate:        returnDate,
		MonthlyRate:       req.MonthlyRate,
		PrincipalLeft:     req.Amount,
		LastPaymentDate:   today,
		Status:            models.StatusOngoing,
		Participants:      req.Participants,
		Payments:          []models.PaymentRecord{},
	}

	if err := s.InvestmentRepo.CreateInvestment(ctx, inv); err != nil {
		return models.Investment{}, err
	}

	metrics.InvestmentsCreated.Inc()
	s.invalidateFigures(ctx)
	return inv, nil
}

// RecordPayment applies a payment against an investment. Admin only. The
// date defaults to today when the request leaves it empty.
func (s *InvestmentService) RecordPayment(ctx context.Context, actor models.Member, investmentID string, req models.RecordPaymentRequest) (models.Investment, error) {
	if !actor.IsAdmin() {
		metrics.PaymentsRejected.WithLabelValues("unauthorized").Inc()
		return models.Investment{}, models.ErrUnauthorized
	}
	if req.Amount <= 0 {
		metrics.PaymentsRejected.WithLabelValues("invalid_amount").Inc()
		return models.Investment{}, models.ErrInvalidAmount
	}

	date := models.Today()
	if req.Date != "" {
		var err error
		date, err = models.ParseDate(req.Date)
		if err != nil {
			metrics.PaymentsRejected.WithLabelValues("invalid_date").Inc()
			return models.Investment{}, models.ErrInvalidDate
		}
	}

	updated, err := s.InvestmentRepo.RecordPayment(ctx, investmentID, req.Amount, date)
	if err != nil {
		metrics.PaymentsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return models.Investment{}, err
	}

	metrics.PaymentsRecorded.Inc()
	s.invalidateFigures(ctx)
	return updated, nil
}

// ListForViewer builds the dashboard payload: personal and company figures
// as of today plus a sanitized view of every investment.
func (s *InvestmentService) ListForViewer(ctx context.Context, viewerID string) (models.Dashboard, error) {
	viewer, err := s.MemberRepo.GetMemberByID(ctx, viewerID)
	if err != nil {
		return models.Dashboard{}, err
	}

	invs, err := s.InvestmentRepo.ListInvestments(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	members, err := s.MemberRepo.ListMembers(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	today := models.Today()
	names := finance.BuildNameDirectory(members)

	views := make([]models.InvestmentView, 0, len(invs))
	for _, inv := range invs {
		views = append(views, finance.SanitizeInvestmentForMember(inv, viewer, names))
	}

	return models.Dashboard{
		Personal:    finance.ComputeMemberFigures(viewer.ID, invs, today),
		Company:     finance.ComputeCompanyFigures(invs, today),
		Investments: views,
		Members:     members,
	}, nil
}

func (s *InvestmentService) invalidateFigures(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		log.Printf("Warning: failed to invalidate figures cache: %v", err)
	}
}

func rejectionReason(err error) string {
	switch err {
	case models.ErrInvalidAmount:
		return "invalid_amount"
	case models.ErrInvestmentEnded:
		return "ended"
	case models.ErrPaymentBackdated:
		return "backdated"
	case models.ErrInvestmentNotFound:
		return "not_found"
	default:
		return "error"
	}
}
