package routes

import (
	"net/http"

	"github.com/anchorhq/anchor/internal/app"
	"github.com/anchorhq/anchor/internal/handler"
	"github.com/anchorhq/anchor/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg.JWTExpiry)
	account := handler.NewAccountHandler(app.UserService, app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService)
	checkIn := handler.NewCheckInHandler(app.CheckInService)
	progress := handler.NewProgressHandler(app.ProgressService, 30)
	goal := handler.NewGoalHandler(app.GoalService)
	milestone := handler.NewMilestoneHandler(app.MilestoneService)
	contact := handler.NewContactHandler(app.ContactService)
	strategy := handler.NewStrategyHandler(app.StrategyService)
	library := handler.NewLibraryHandler(app.LibraryService)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", handler.Health)

	// Strategy library is public reading material
	mux.HandleFunc("GET /library/strategies", library.List)
	mux.HandleFunc("GET /library/strategies/{slug}", library.Get)

	// Auth flow (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/magic-link", rateLimiter(middleware.RequireGuest(auth.RequestMagicLink)))
	mux.HandleFunc("POST /auth/forgot-password", rateLimiter(middleware.RequireGuest(auth.ForgotPassword)))
	mux.HandleFunc("GET /auth/magic-link/{token}", auth.VerifyMagicLink)
	mux.HandleFunc("GET /auth/forgot-password/{token}", auth.VerifyForgotPassword)
	mux.HandleFunc("GET /auth/verify-email-change/{token}", auth.VerifyEmailChange)
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Protected routes (/api/*)

	// Account & profile
	mux.HandleFunc("GET /api/account", middleware.RequireAuth(account.Me))
	mux.HandleFunc("POST /api/account/onboarding", middleware.RequireAuth(account.Onboard))
	mux.HandleFunc("POST /api/account/password", middleware.RequireAuth(account.UpdatePassword))
	mux.HandleFunc("POST /api/account/password/set", middleware.RequireAuth(account.SetPassword))
	mux.HandleFunc("DELETE /api/account/password", middleware.RequireAuth(account.RemovePassword))
	mux.HandleFunc("PATCH /api/account/email", middleware.RequireAuth(account.RequestEmailChange))
	mux.HandleFunc("DELETE /api/account", middleware.RequireAuth(account.Delete))
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Get))
	mux.HandleFunc("PATCH /api/profile/name", middleware.RequireAuth(profile.UpdateName))
	mux.HandleFunc("PUT /api/profile/recovery-start-date", middleware.RequireAuth(profile.UpdateRecoveryStartDate))

	// Daily check-ins
	mux.HandleFunc("PUT /api/check-ins/today", middleware.RequireAuth(checkIn.Submit))
	mux.HandleFunc("GET /api/check-ins/today", middleware.RequireAuth(checkIn.Today))
	mux.HandleFunc("GET /api/check-ins/{date}", middleware.RequireAuth(checkIn.ByDate))
	mux.HandleFunc("GET /api/check-ins", middleware.RequireAuth(checkIn.List))

	// Progress & milestones
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progress.Overview))
	mux.HandleFunc("GET /api/progress/dates", middleware.RequireAuth(progress.Dates))
	mux.HandleFunc("GET /api/milestones", middleware.RequireAuth(milestone.List))
	mux.HandleFunc("POST /api/milestones/evaluate", middleware.RequireAuth(milestone.Evaluate))

	// Goals
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("POST /api/goals/{id}/complete", middleware.RequireAuth(goal.Complete))
	mux.HandleFunc("DELETE /api/goals/{id}/complete", middleware.RequireAuth(goal.Uncomplete))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Support contacts
	mux.HandleFunc("POST /api/contacts", middleware.RequireAuth(contact.Create))
	mux.HandleFunc("GET /api/contacts", middleware.RequireAuth(contact.List))
	mux.HandleFunc("PUT /api/contacts/{id}", middleware.RequireAuth(contact.Update))
	mux.HandleFunc("DELETE /api/contacts/{id}", middleware.RequireAuth(contact.Delete))

	// Personal coping strategies
	mux.HandleFunc("POST /api/strategies", middleware.RequireAuth(strategy.Create))
	mux.HandleFunc("GET /api/strategies", middleware.RequireAuth(strategy.List))
	mux.HandleFunc("PUT /api/strategies/{id}", middleware.RequireAuth(strategy.Update))
	mux.HandleFunc("PUT /api/strategies/{id}/favorite", middleware.RequireAuth(strategy.SetFavorite))
	mux.HandleFunc("DELETE /api/strategies/{id}", middleware.RequireAuth(strategy.Delete))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.ProfileService),
	)

	return h
}
