package repo

import (
	"github.com/donyelqt/tarana-rewards/internal/pg"
	creditrepo "github.com/donyelqt/tarana-rewards/internal/repo/credit-repo"
	profilerepo "github.com/donyelqt/tarana-rewards/internal/repo/profile-repo"
	referralrepo "github.com/donyelqt/tarana-rewards/internal/repo/referral-repo"
)

type Repositories struct {
	ProfileRepo  *profilerepo.Repository
	ReferralRepo *referralrepo.Repository
	CreditRepo   *creditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	profileRepo := profilerepo.New(conn, txManager)
	referralRepo := referralrepo.New(conn, txManager)
	creditRepo := creditrepo.New(conn)

	return &Repositories{
		ProfileRepo:  profileRepo,
		ReferralRepo: referralRepo,
		CreditRepo:   creditRepo,
	}
}
