package referralservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockReferralRepo, *MockReconciler) {
	ctrl := gomock.NewController(t)
	profileRepo := NewMockProfileRepo(ctrl)
	referralRepo := NewMockReferralRepo(ctrl)
	reconciler := NewMockReconciler(ctrl)
	service := New(profileRepo, referralRepo, reconciler, tiers.Default())
	defer ctrl.Finish()
	return service, profileRepo, referralRepo, reconciler
}

func TestValidateCode(t *testing.T) {
	service, profileRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		code          string
		prepareMock   func()
		expectedValid bool
		expectedError error
	}{
		{
			name: "Known code is valid",
			code: "1234567897",
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").
					Return(&domain.UserProfile{ID: 1, ReferralCode: "1234567897"}, nil)
			},
			expectedValid: true,
		},
		{
			name: "Unknown code is a negative answer, not an error",
			code: "1234567897",
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").Return(nil, nil)
			},
			expectedValid: false,
		},
		{
			name:          "Malformed code skips the store entirely",
			code:          "DOESNOTEXIST",
			prepareMock:   func() {},
			expectedValid: false,
		},
		{
			name:          "Bad check digit skips the store entirely",
			code:          "1234567890",
			prepareMock:   func() {},
			expectedValid: false,
		},
		{
			name: "Repo error",
			code: "1234567897",
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").
					Return(nil, errors.New("db error"))
			},
			expectedValid: false,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			valid, err := service.ValidateCode(context.Background(), tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedValid, valid)
		})
	}
}

func TestGetUserReferralCode(t *testing.T) {
	service, profileRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  string
		expectedError error
	}{
		{
			name: "Returns the profile's code",
			prepareMock: func() {
				profileRepo.EXPECT().GetByID(gomock.Any(), 1).
					Return(&domain.UserProfile{ID: 1, ReferralCode: "1234567897"}, nil)
			},
			expectedCode: "1234567897",
		},
		{
			name: "Missing profile",
			prepareMock: func() {
				profileRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrProfileNotFound,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				profileRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			code, err := service.GetUserReferralCode(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}

func TestGetStats(t *testing.T) {
	service, _, referralRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.ReferralStats
		expectedError error
	}{
		{
			name: "Aggregates live from referral rows",
			prepareMock: func() {
				referralRepo.EXPECT().CountByReferrer(gomock.Any(), 1).
					Return(&domain.ReferralStats{Total: 5, Active: 3}, nil)
			},
			expected: &domain.ReferralStats{Total: 5, Active: 3},
		},
		{
			name: "Repo error",
			prepareMock: func() {
				referralRepo.EXPECT().CountByReferrer(gomock.Any(), 1).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			stats, err := service.GetStats(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, stats)
		})
	}
}

func TestGetTierProgress(t *testing.T) {
	service, _, referralRepo, _ := NewMock(t)

	t.Run("Progress is computed from active referrals", func(t *testing.T) {
		referralRepo.EXPECT().CountByReferrer(gomock.Any(), 1).
			Return(&domain.ReferralStats{Total: 6, Active: 4}, nil)

		progress, err := service.GetTierProgress(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Smart Traveler", progress.Current.Name)
		assert.Equal(t, "Voyager", progress.Next.Name)
		assert.Equal(t, 4, progress.ActiveReferrals)
		assert.Equal(t, 1, progress.ReferralsNeeded)
	})

	t.Run("Repo error", func(t *testing.T) {
		referralRepo.EXPECT().CountByReferrer(gomock.Any(), 1).
			Return(nil, errors.New("db error"))

		progress, err := service.GetTierProgress(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, progress)
	})
}

func TestAllTiers(t *testing.T) {
	service, _, _, _ := NewMock(t)

	all := service.AllTiers()
	assert.Len(t, all, 4)
	assert.Equal(t, "Default", all[0].Name)
	assert.Equal(t, "Voyager", all[3].Name)
}

func TestCreateReferral(t *testing.T) {
	service, profileRepo, referralRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		refereeID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Records a pending referral",
			refereeID: 2,
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").
					Return(&domain.UserProfile{ID: 1, ReferralCode: "1234567897"}, nil)
				referralRepo.EXPECT().Create(gomock.Any(), &domain.Referral{
					ReferrerID:   1,
					RefereeID:    2,
					ReferralCode: "1234567897",
					Status:       domain.ReferralStatusPending,
				}).Return(&domain.Referral{ID: 10}, nil)
			},
		},
		{
			name:      "Unknown code",
			refereeID: 2,
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").Return(nil, nil)
			},
			expectedError: ErrInvalidCode,
		},
		{
			name:      "Own code is rejected",
			refereeID: 1,
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").
					Return(&domain.UserProfile{ID: 1, ReferralCode: "1234567897"}, nil)
			},
			expectedError: ErrSelfReferral,
		},
		{
			name:      "Create failure",
			refereeID: 2,
			prepareMock: func() {
				profileRepo.EXPECT().GetByReferralCode(gomock.Any(), "1234567897").
					Return(&domain.UserProfile{ID: 1, ReferralCode: "1234567897"}, nil)
				referralRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.CreateReferral(context.Background(), "1234567897", tt.refereeID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActivateForReferee(t *testing.T) {
	service, _, referralRepo, reconciler := NewMock(t)

	pending := &domain.Referral{
		ID:         10,
		ReferrerID: 1,
		RefereeID:  2,
		Status:     domain.ReferralStatusPending,
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Activates and reconciles the referrer",
			prepareMock: func() {
				referralRepo.EXPECT().GetPendingByReferee(gomock.Any(), 2).Return(pending, nil)
				referralRepo.EXPECT().Activate(gomock.Any(), 10).Return(nil)
				reconciler.EXPECT().Reconcile(gomock.Any(), 1).
					Return(&reconcileservice.Report{UserID: 1}, nil)
			},
		},
		{
			name: "No pending referral is a no-op",
			prepareMock: func() {
				referralRepo.EXPECT().GetPendingByReferee(gomock.Any(), 2).Return(nil, nil)
			},
		},
		{
			name: "Lookup failure",
			prepareMock: func() {
				referralRepo.EXPECT().GetPendingByReferee(gomock.Any(), 2).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Activate failure",
			prepareMock: func() {
				referralRepo.EXPECT().GetPendingByReferee(gomock.Any(), 2).Return(pending, nil)
				referralRepo.EXPECT().Activate(gomock.Any(), 10).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Reconcile failure",
			prepareMock: func() {
				referralRepo.EXPECT().GetPendingByReferee(gomock.Any(), 2).Return(pending, nil)
				referralRepo.EXPECT().Activate(gomock.Any(), 10).Return(nil)
				reconciler.EXPECT().Reconcile(gomock.Any(), 1).
					Return(nil, errors.New("reconcile error"))
			},
			expectedError: errors.New("reconcile error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ActivateForReferee(context.Background(), 2)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
