package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
	"github.com/donyelqt/tarana-rewards/pkg/auth"
	"github.com/donyelqt/tarana-rewards/pkg/validate"
	"go.uber.org/zap"
)

type ProfileRepo interface {
	GetByLogin(ctx context.Context, login string) (*domain.UserProfile, error)
	Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
}

type ReferralService interface {
	CreateReferral(ctx context.Context, code string, refereeID int) error
}

type Service struct {
	profileRepo     ProfileRepo
	referralService ReferralService
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
	catalog         tiers.Catalog
}

func New(profileRepo ProfileRepo, referralService ReferralService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, catalog tiers.Catalog) *Service {
	return &Service{
		profileRepo:     profileRepo,
		referralService: referralService,
		hashService:     hashService,
		jwtService:      jwtService,
		catalog:         catalog,
	}
}

// Register creates a profile on the base tier with a fresh referral code.
// When the signup carries someone else's code, a pending referral row is
// recorded; a bad code is logged and ignored so the signup still succeeds.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.UserProfile, error) {
	existing, err := s.profileRepo.GetByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	base := s.catalog.All()[0]
	profile := &domain.UserProfile{
		Login:        login,
		PasswordHash: hashedPassword,
		ReferralCode: validate.NewReferralCode(),
		CurrentTier:  base.Name,
		DailyCredits: base.TotalDailyCredits,
	}
	newProfile, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		zap.L().Error("can't create user profile: ", zap.Error(err))
		return nil, err
	}

	if referralCode != "" {
		if err := s.referralService.CreateReferral(ctx, referralCode, newProfile.ID); err != nil {
			zap.L().Warn("signup referral code not applied",
				zap.String("login", login), zap.Error(err))
		}
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newProfile, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByLogin(ctx, login)
	if err != nil || profile == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(profile.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return profile, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
