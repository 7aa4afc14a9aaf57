package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/donyelqt/tarana-rewards/docs"
	authhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/auth"
	credithandlers "github.com/donyelqt/tarana-rewards/internal/handlers/credits"
	referralhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/referrals"
	tierhandlers "github.com/donyelqt/tarana-rewards/internal/handlers/tiers"
	"github.com/donyelqt/tarana-rewards/internal/service"
	reconcileservice "github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      authhandlers.NewMockService(ctrl),
		CreditService:    credithandlers.NewMockService(ctrl),
		ReferralService:  referralhandlers.NewMockService(ctrl),
		TierService:      tierhandlers.NewMockService(ctrl),
		ReconcileService: &reconcileservice.Service{},
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCreditHandler := NewMockCreditHandler(ctrl)
	mockReferralHandler := NewMockReferralHandler(ctrl)
	mockTierHandler := NewMockTierHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCreditHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockCreditHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockCreditHandler.EXPECT().Consume(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().ValidateCode(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().GetStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).AnyTimes()
	mockTierHandler.EXPECT().GetAllTiers(gomock.Any(), gomock.Any()).AnyTimes()
	mockTierHandler.EXPECT().GetCurrentTier(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		CreditHandler:   mockCreditHandler,
		ReferralHandler: mockReferralHandler,
		TierHandler:     mockTierHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/referrals/validate", http.StatusOK},
		{"GET", "/api/tiers/all", http.StatusOK},
		{"GET", "/api/credits/balance", http.StatusUnauthorized},
		{"GET", "/api/credits/history", http.StatusUnauthorized},
		{"POST", "/api/credits/consume", http.StatusUnauthorized},
		{"GET", "/api/referrals/stats", http.StatusUnauthorized},
		{"POST", "/api/referrals/reconcile", http.StatusUnauthorized},
		{"GET", "/api/tiers/current", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
