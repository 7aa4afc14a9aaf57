package service

import (
	"github.com/donyelqt/tarana-rewards/internal/handlers/auth"
	"github.com/donyelqt/tarana-rewards/internal/handlers/credits"
	"github.com/donyelqt/tarana-rewards/internal/handlers/referrals"
	tierhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/tiers"

	pkgauth "github.com/donyelqt/tarana-rewards/pkg/auth"

	"github.com/donyelqt/tarana-rewards/internal/repo"
	authservice "github.com/donyelqt/tarana-rewards/internal/service/authservice"
	creditservice "github.com/donyelqt/tarana-rewards/internal/service/creditservice"
	reconcileservice "github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
	referralservice "github.com/donyelqt/tarana-rewards/internal/service/referralservice"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
)

type Services struct {
	AuthService      auth.Service
	CreditService    credits.Service
	ReferralService  referrals.Service
	TierService      tierhandlers.Service
	ReconcileService *reconcileservice.Service
}

func New(repo *repo.Repositories, catalog tiers.Catalog) *Services {
	reconcileService := reconcileservice.New(repo.ProfileRepo, repo.ReferralRepo, repo.CreditRepo, catalog)
	referralService := referralservice.New(repo.ProfileRepo, repo.ReferralRepo, reconcileService, catalog)
	creditService := creditservice.New(repo.ProfileRepo, repo.CreditRepo, referralService)
	authService := authservice.New(repo.ProfileRepo, referralService, &pkgauth.HashService{}, &pkgauth.JWTService{}, catalog)

	return &Services{
		AuthService:      authService,
		CreditService:    creditService,
		ReferralService:  referralService,
		TierService:      referralService,
		ReconcileService: reconcileService,
	}
}
