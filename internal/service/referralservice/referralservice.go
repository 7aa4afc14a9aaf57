package referralservice

import (
	"context"
	"errors"
	"time"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
	"github.com/donyelqt/tarana-rewards/pkg/validate"
	"go.uber.org/zap"
)

type ProfileRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.UserProfile, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.UserProfile, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error)
	CountByReferrer(ctx context.Context, referrerID int) (*domain.ReferralStats, error)
	GetPendingByReferee(ctx context.Context, refereeID int) (*domain.Referral, error)
	Activate(ctx context.Context, referralID int) error
}

type Reconciler interface {
	Reconcile(ctx context.Context, userID int) (*reconcileservice.Report, error)
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidCode     = errors.New("invalid referral code")
	ErrSelfReferral    = errors.New("cannot use own referral code")
)

type Service struct {
	profileRepo  ProfileRepo
	referralRepo ReferralRepo
	reconciler   Reconciler
	catalog      tiers.Catalog
}

func New(profileRepo ProfileRepo, referralRepo ReferralRepo, reconciler Reconciler, catalog tiers.Catalog) *Service {
	return &Service{
		profileRepo:  profileRepo,
		referralRepo: referralRepo,
		reconciler:   reconciler,
		catalog:      catalog,
	}
}

// ValidateCode reports whether a code belongs to some profile. An unknown
// code is a negative answer, not an error. Codes that fail the check-digit
// test are rejected without a store round trip.
func (s *Service) ValidateCode(ctx context.Context, code string) (bool, error) {
	if !validate.IsReferralCode(code) {
		return false, nil
	}
	profile, err := s.profileRepo.GetByReferralCode(ctx, code)
	if err != nil {
		zap.L().Error("failed to look up referral code", zap.Error(err))
		return false, err
	}
	return profile != nil, nil
}

func (s *Service) GetUserReferralCode(ctx context.Context, userID int) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return "", err
	}
	if profile == nil {
		return "", ErrProfileNotFound
	}
	return profile.ReferralCode, nil
}

// GetStats aggregates referral rows live. The cached profile counters are
// never consulted here.
func (s *Service) GetStats(ctx context.Context, userID int) (*domain.ReferralStats, error) {
	stats, err := s.referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get referral stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) GetTierProgress(ctx context.Context, userID int) (*tiers.Progress, error) {
	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress := s.catalog.ProgressFor(stats.Active)
	return &progress, nil
}

func (s *Service) AllTiers() []tiers.Config {
	return s.catalog.All()
}

// CreateReferral records a pending referral for a referee who signed up
// with another user's code.
func (s *Service) CreateReferral(ctx context.Context, code string, refereeID int) error {
	referrer, err := s.profileRepo.GetByReferralCode(ctx, code)
	if err != nil {
		zap.L().Error("failed to resolve referrer", zap.Error(err))
		return err
	}
	if referrer == nil {
		return ErrInvalidCode
	}
	if referrer.ID == refereeID {
		return ErrSelfReferral
	}

	referral := &domain.Referral{
		ReferrerID:   referrer.ID,
		RefereeID:    refereeID,
		ReferralCode: code,
		Status:       domain.ReferralStatusPending,
	}
	if _, err := s.referralRepo.Create(ctx, referral); err != nil {
		zap.L().Error("failed to create referral", zap.Error(err))
		return err
	}

	zap.L().Info("referral recorded",
		zap.Int("referrerID", referrer.ID),
		zap.Int("refereeID", refereeID),
	)
	return nil
}

// ActivateForReferee flips the referee's pending referral to active and
// recomputes the referrer's cached counters through the reconciler, so the
// status transition and the counter update land together. A referee with no
// pending referral is a no-op.
func (s *Service) ActivateForReferee(ctx context.Context, refereeID int) error {
	referral, err := s.referralRepo.GetPendingByReferee(ctx, refereeID)
	if err != nil {
		zap.L().Error("failed to look up pending referral", zap.Error(err))
		return err
	}
	if referral == nil {
		return nil
	}

	if err := s.referralRepo.Activate(ctx, referral.ID); err != nil {
		return err
	}

	if _, err := s.reconciler.Reconcile(ctx, referral.ReferrerID); err != nil {
		zap.L().Error("failed to reconcile referrer after activation",
			zap.Int("referrerID", referral.ReferrerID), zap.Error(err))
		return err
	}

	zap.L().Info("referral activated",
		zap.Int("referralID", referral.ID),
		zap.Int("referrerID", referral.ReferrerID),
		zap.Time("activatedAt", time.Now()),
	)
	return nil
}
