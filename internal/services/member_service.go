package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kassaBack/internal/metrics"
	"kassaBack/internal/models"
	"kassaBack/internal/repositories"
	"kassaBack/utils"
)

type MemberService struct {
	MemberRepo   repositories.MemberRepository
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// SignIn authenticates a member by access code and opens a session. Codes
// are stored bcrypt-hashed, so the candidate is compared against every
// member; the organization is small enough that this stays cheap.
func (s *MemberService) SignIn(ctx context.Context, code string) (models.SignInResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		metrics.SignIns.WithLabelValues("invalid").Inc()
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	members, err := s.MemberRepo.ListMembersWithCredentials(ctx)
	if err != nil {
		return models.SignInResponse{}, err
	}

	var member models.Member
	found := false
	for _, m := range members {
		if bcrypt.CompareHashAndPassword([]byte(m.AccessCodeHash), []byte(code)) == nil {
			member = m
			found = true
			break
		}
	}
	if !found {
		metrics.SignIns.WithLabelValues("invalid").Inc()
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewJWT(member.ID, member.Role, s.AccessTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	session := models.Session{
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}
	if err := s.MemberRepo.SetSession(ctx, member.ID, session); err != nil {
		return models.SignInResponse{}, err
	}

	member.AccessCodeHash = ""
	metrics.SignIns.WithLabelValues("ok").Inc()
	return models.SignInResponse{
		Member: member,
		Tokens: models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

// CreateMember registers a new member. Admin only.
func (s *MemberService) CreateMember(ctx context.Context, actor models.Member, req models.CreateMemberRequest) (models.Member, error) {
	if !actor.IsAdmin() {
		return models.Member{}, models.ErrUnauthorized
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.Member{}, models.ErrInvalidMember
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleMember {
		return models.Member{}, models.ErrInvalidMember
	}
	if len(req.Code) < 4 {
		return models.Member{}, models.ErrInvalidMember
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Code), bcrypt.DefaultCost)
	if err != nil {
		return models.Member{}, err
	}

	member := models.Member{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(req.Name),
		Role:           req.Role,
		AccessCodeHash: string(hash),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.MemberRepo.CreateMember(ctx, member); err != nil {
		return models.Member{}, err
	}

	member.AccessCodeHash = ""
	return member, nil
}

// ListMembers returns all members without credential material.
func (s *MemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.MemberRepo.ListMembers(ctx)
}

// GetMember fetches one member by id.
func (s *MemberService) GetMember(ctx context.Context, id string) (models.Member, error) {
	return s.MemberRepo.GetMemberByID(ctx, id)
}
