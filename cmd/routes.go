package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("member"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Members
	mux.Post("/member/sign_in", standardMiddleware.ThenFunc(app.memberHandler.SignIn))
	mux.Post("/member", adminAuthMiddleware.ThenFunc(app.memberHandler.CreateMember))
	mux.Get("/members", authMiddleware.ThenFunc(app.memberHandler.GetMembers))

	// Investments
	mux.Post("/investment", adminAuthMiddleware.ThenFunc(app.investmentHandler.CreateInvestment))
	mux.Get("/investments", authMiddleware.ThenFunc(app.investmentHandler.GetInvestments))
	mux.Post("/investment/:id/payment", adminAuthMiddleware.ThenFunc(app.investmentHandler.RecordPayment))

	// Figures
	mux.Get("/figures", authMiddleware.ThenFunc(app.figuresHandler.GetFigures))

	// Operational
	mux.Get("/metrics", promhttp.Handler())
	mux.Get("/health", standardMiddleware.ThenFunc(app.health))

	return mux
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
