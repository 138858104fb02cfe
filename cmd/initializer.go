package main

import (
	"database/sql"
	"log"
	"time"

	"kassaBack/internal/config"
	"kassaBack/internal/handlers"
	"kassaBack/internal/repositories"
	"kassaBack/internal/services"
	"kassaBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	tokenManager *utils.Manager
	memberRepo   repositories.MemberRepository

	memberHandler     *handlers.MemberHandler
	investmentHandler *handlers.InvestmentHandler
	figuresHandler    *handlers.FiguresHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Repositories
	memberRepo := repositories.NewMySQLMemberRepository(db)
	investmentRepo := repositories.NewMySQLInvestmentRepository(db)

	var cache repositories.FiguresCache
	if cfg.Redis.Addr != "" {
		cache = repositories.NewRedisFiguresCache(cfg.Redis.Addr)
	} else {
		infoLog.Println("redis not configured, using in-memory figures cache")
		cache = repositories.NewMockFiguresCache()
	}

	// Services
	memberService := &services.MemberService{
		MemberRepo:   memberRepo,
		TokenManager: tokenManager,
		AccessTTL:    time.Duration(cfg.Auth.AccessTTLMin) * time.Minute,
		RefreshTTL:   time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour,
	}
	investmentService := &services.InvestmentService{
		InvestmentRepo: investmentRepo,
		MemberRepo:     memberRepo,
		Cache:          cache,
	}
	figureService := &services.FigureService{
		InvestmentRepo: investmentRepo,
		MemberRepo:     memberRepo,
		Cache:          cache,
	}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		db:                db,
		tokenManager:      tokenManager,
		memberRepo:        memberRepo,
		memberHandler:     &handlers.MemberHandler{Service: memberService},
		investmentHandler: &handlers.InvestmentHandler{Service: investmentService},
		figuresHandler:    &handlers.FiguresHandler{Service: figureService},
	}, nil
}
