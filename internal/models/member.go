package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Member struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	AccessCodeHash string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

type Claims struct {
	MemberID string `json:"member_id"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	MemberID     string    `json:"member_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignInRequest struct {
	Code string `json:"code"`
}

type SignInResponse struct {
	Member Member `json:"member"`
	Tokens Tokens `json:"tokens"`
}

type CreateMemberRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Code string `json:"code"`
}
