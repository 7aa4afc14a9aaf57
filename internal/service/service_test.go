package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/donyelqt/tarana-rewards/internal/pg"
	"github.com/donyelqt/tarana-rewards/internal/repo"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	services := New(repos, tiers.Default())

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CreditService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.TierService)
	assert.NotNil(t, services.ReconcileService)

	// The tier surface is served by the referral service.
	assert.Equal(t, services.ReferralService, services.TierService)
}
