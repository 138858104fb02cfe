package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvestmentNotFound = errors.New("models: investment not found")
	ErrMemberNotFound     = errors.New("models: member not found")
	ErrUnauthorized       = errors.New("models: operation not permitted")
	ErrInvalidAmount      = errors.New("models: invalid payment amount")
	ErrInvestmentEnded    = errors.New("models: investment already ended")
	ErrPaymentBackdated   = errors.New("models: payment dated before last payment")
	ErrDuplicateCode      = errors.New("models: access code already in use")
	ErrInvalidInvestment  = errors.New("models: invalid investment record")
	ErrInvalidMember      = errors.New("models: invalid member record")
	ErrInvalidDate        = errors.New("models: invalid date")
)
