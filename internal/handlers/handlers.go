package handlers

import (
	"net/http"

	_ "github.com/donyelqt/tarana-rewards/docs"
	authhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/auth"
	credithandlers "github.com/donyelqt/tarana-rewards/internal/handlers/credits"
	referralhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/referrals"
	tierhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/tiers"
	"github.com/donyelqt/tarana-rewards/internal/service"
	"github.com/donyelqt/tarana-rewards/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Consume(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	ValidateCode(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type TierHandler interface {
	GetAllTiers(w http.ResponseWriter, r *http.Request)
	GetCurrentTier(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CreditHandler   CreditHandler
	ReferralHandler ReferralHandler
	TierHandler     TierHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CreditHandler:   credithandlers.New(s.CreditService),
		ReferralHandler: referralhandlers.New(s.ReferralService, s.ReconcileService),
		TierHandler:     tierhandlers.New(s.TierService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Post("/referrals/validate", h.ReferralHandler.ValidateCode)
		r.Get("/tiers/all", h.TierHandler.GetAllTiers)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/credits", func(r chi.Router) {
				r.Get("/balance", h.CreditHandler.GetBalance)
				r.Get("/history", h.CreditHandler.GetHistory)
				r.Post("/consume", h.CreditHandler.Consume)
			})
			r.Get("/referrals/stats", h.ReferralHandler.GetStats)
			r.Post("/referrals/reconcile", h.ReferralHandler.Reconcile)
			r.Get("/tiers/current", h.TierHandler.GetCurrentTier)
		})
	})

	return r
}
