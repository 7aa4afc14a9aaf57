package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
	"github.com/donyelqt/tarana-rewards/pkg/auth"
	"github.com/donyelqt/tarana-rewards/pkg/validate"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockReferralService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	profileRepo := NewMockProfileRepo(ctrl)
	referralService := NewMockReferralService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(profileRepo, referralService, hashService, jwtService, tiers.Default())
	defer ctrl.Finish()
	return service, profileRepo, referralService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, profileRepo, referralService, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		referralCode  string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration on the base tier",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				profileRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
					assert.Equal(t, "Default", profile.CurrentTier)
					assert.Equal(t, 5, profile.DailyCredits)
					assert.True(t, validate.IsReferralCode(profile.ReferralCode))
					profile.ID = 1
					return profile, nil
				})
			},
			expectedError: nil,
		},
		{
			name:         "Signup with a referral code records a pending referral",
			login:        "referee",
			password:     "testpassword",
			referralCode: "1234567897",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "referee").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				profileRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
					profile.ID = 2
					return profile, nil
				})
				referralService.EXPECT().CreateReferral(context.Background(), "1234567897", 2).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:         "Bad referral code does not fail the signup",
			login:        "referee",
			password:     "testpassword",
			referralCode: "0000000000",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "referee").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				profileRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
					profile.ID = 3
					return profile, nil
				})
				referralService.EXPECT().CreateReferral(context.Background(), "0000000000", 3).
					Return(errors.New("invalid referral code"))
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").
					Return(&domain.UserProfile{ID: 1, Login: "testuser"}, nil)
			},
			expectedError: errors.New("username already taken"),
		},
		{
			name:     "Lookup failure",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:     "Hash failure",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Create failure",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				profileRepo.EXPECT().Create(context.Background(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			profile, err := service.Register(context.Background(), tt.login, tt.password, tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, profile)
				assert.Equal(t, tt.login, profile.Login)
				assert.Equal(t, "hashedpassword", profile.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, profileRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").
					Return(&domain.UserProfile{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: nil,
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").Return(nil, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").
					Return(&domain.UserProfile{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name: "Lookup failure",
			prepareMock: func() {
				profileRepo.EXPECT().GetByLogin(context.Background(), "testuser").
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			profile, err := service.Authenticate(context.Background(), "testuser", "testpassword")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, profile)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	t.Run("Successful token generation", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(1)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Generation failure", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("sign error"))

		token, err := service.GenerateToken(1)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
