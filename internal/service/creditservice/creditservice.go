package creditservice

import (
	"context"
	"errors"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type ProfileRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.UserProfile, error)
}

type CreditRepo interface {
	GetHistory(ctx context.Context, userID, limit int) ([]domain.CreditTransaction, error)
	Consume(ctx context.Context, userID, amount int, service, description string) (*domain.ConsumeResult, error)
}

// Activator is notified after every successful consume; the referral slice
// uses it to activate the consumer's pending referral.
type Activator interface {
	ActivateForReferee(ctx context.Context, refereeID int) error
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrInvalidAmount       = errors.New("invalid amount")
)

type Service struct {
	profileRepo ProfileRepo
	creditRepo  CreditRepo
	activator   Activator
}

func New(profileRepo ProfileRepo, creditRepo CreditRepo, activator Activator) *Service {
	return &Service{
		profileRepo: profileRepo,
		creditRepo:  creditRepo,
		activator:   activator,
	}
}

// GetBalance derives the remaining daily allotment from the profile row.
func (s *Service) GetBalance(ctx context.Context, userID int) (int, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile for balance", zap.Error(err))
		return 0, err
	}
	if profile == nil {
		return 0, ErrProfileNotFound
	}
	return profile.DailyCredits - profile.CreditsUsedToday, nil
}

// GetHistory returns the newest ledger rows. A limit below 1 falls back to
// the default; the cap holds regardless of caller input.
func (s *Service) GetHistory(ctx context.Context, userID, limit int) ([]domain.CreditTransaction, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	history, err := s.creditRepo.GetHistory(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch credit history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

// Consume spends credits through the store's atomic function and takes its
// answer as final. Concurrent consumes for one user serialize on the
// store's row lock, not here.
func (s *Service) Consume(ctx context.Context, userID, amount int, service, description string) (*domain.ConsumeResult, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	res, err := s.creditRepo.Consume(ctx, userID, amount, service, description)
	if err != nil {
		zap.L().Error("consume failed", zap.Error(err))
		return nil, err
	}

	if !res.Success {
		switch res.ErrorCode {
		case "insufficient_balance":
			return nil, ErrInsufficientBalance
		case "profile_not_found":
			return nil, ErrProfileNotFound
		case "invalid_amount":
			return nil, ErrInvalidAmount
		default:
			zap.L().Error("consume_credits reported unexpected error", zap.String("errorCode", res.ErrorCode))
			return nil, errors.New("consume rejected: " + res.ErrorCode)
		}
	}

	if err := s.activator.ActivateForReferee(ctx, userID); err != nil {
		// The spend already landed; activation is retried by the next
		// consume or the background sweep.
		zap.L().Warn("referral activation after consume failed", zap.Int("userID", userID), zap.Error(err))
	}

	zap.L().Info("credits consumed",
		zap.Int("userID", userID),
		zap.Int("amount", amount),
		zap.String("service", service),
		zap.Int("newBalance", res.NewBalance),
	)
	return res, nil
}
