package reconcileservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
	"go.uber.org/zap"
)

type ProfileRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.UserProfile, error)
	UpdateTierFields(ctx context.Context, userID, totalReferrals, activeReferrals int, tier string, dailyCredits int) (*domain.UserProfile, error)
}

type ReferralRepo interface {
	CountByReferrer(ctx context.Context, referrerID int) (*domain.ReferralStats, error)
}

type Prober interface {
	ProbeConsumeFunction(ctx context.Context) domain.ProbeResult
}

var ErrProfileNotFound = errors.New("profile not found")

type Outcome string

const (
	OutcomePass    Outcome = "pass"
	OutcomeFail    Outcome = "fail"
	OutcomeUnknown Outcome = "unknown"
)

type Check struct {
	Name    string
	Outcome Outcome
	Detail  string
}

// Report is the fixed-shape result of one reconciliation run: every check
// that ran, the profile fields that were overwritten, and a summary line.
type Report struct {
	UserID  int
	Checks  []Check
	Changed []string
	Summary string
	OldTier string
	NewTier string
}

func (r *Report) TierChanged() bool {
	return r.OldTier != r.NewTier
}

type Service struct {
	profileRepo  ProfileRepo
	referralRepo ReferralRepo
	prober       Prober
	catalog      tiers.Catalog
}

func New(profileRepo ProfileRepo, referralRepo ReferralRepo, prober Prober, catalog tiers.Catalog) *Service {
	return &Service{
		profileRepo:  profileRepo,
		referralRepo: referralRepo,
		prober:       prober,
		catalog:      catalog,
	}
}

// Reconcile recomputes a user's referral counters from raw referral rows,
// resolves the tier they imply, and overwrites the cached profile fields
// when they disagree. The write is a single statement and leaves
// credits_used_today alone, so a concurrent consume can interleave at
// worst with stale tier fields for one request.
func (s *Service) Reconcile(ctx context.Context, userID int) (*Report, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("reconcile: failed to read profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	stats, err := s.referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		zap.L().Error("reconcile: failed to count referrals", zap.Error(err))
		return nil, err
	}

	expected := s.catalog.Resolve(stats.Active)

	report := &Report{
		UserID:  userID,
		OldTier: profile.CurrentTier,
		NewTier: expected.Name,
	}

	report.Checks = append(report.Checks, s.probeCheck(ctx))

	type fieldCheck struct {
		name   string
		stored string
		want   string
		field  string
	}
	checks := []fieldCheck{
		{"total-referrals", fmt.Sprint(profile.TotalReferrals), fmt.Sprint(stats.Total), "total_referrals"},
		{"active-referrals", fmt.Sprint(profile.ActiveReferrals), fmt.Sprint(stats.Active), "active_referrals"},
		{"tier", profile.CurrentTier, expected.Name, "current_tier"},
		{"daily-credits", fmt.Sprint(profile.DailyCredits), fmt.Sprint(expected.TotalDailyCredits), "daily_credits"},
	}

	for _, c := range checks {
		if c.stored == c.want {
			report.Checks = append(report.Checks, Check{Name: c.name, Outcome: OutcomePass})
			continue
		}
		report.Checks = append(report.Checks, Check{
			Name:    c.name,
			Outcome: OutcomeFail,
			Detail:  fmt.Sprintf("cached %s, derived %s", c.stored, c.want),
		})
		report.Changed = append(report.Changed, c.field)
	}

	if len(report.Changed) == 0 {
		report.Summary = "no issues detected"
		return report, nil
	}

	if _, err := s.profileRepo.UpdateTierFields(ctx, userID, stats.Total, stats.Active, expected.Name, expected.TotalDailyCredits); err != nil {
		zap.L().Error("reconcile: failed to repair profile", zap.Error(err))
		return nil, err
	}

	report.Summary = fmt.Sprintf("repaired %d field(s)", len(report.Changed))
	zap.L().Info("profile reconciled",
		zap.Int("userID", userID),
		zap.Strings("changed", report.Changed),
		zap.String("tier", expected.Name),
	)
	return report, nil
}

func (s *Service) probeCheck(ctx context.Context) Check {
	probe := s.prober.ProbeConsumeFunction(ctx)
	check := Check{Name: "consume-function", Detail: probe.String()}
	switch probe {
	case domain.ProbePresent:
		check.Outcome = OutcomePass
	case domain.ProbeAbsent:
		check.Outcome = OutcomeFail
	default:
		check.Outcome = OutcomeUnknown
	}
	return check
}
