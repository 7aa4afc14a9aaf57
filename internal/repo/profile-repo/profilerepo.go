package profilerepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/pg"
	"go.uber.org/zap"
)

const profileColumns = `id, login, password_hash, referral_code, current_tier, daily_credits, credits_used_today, total_referrals, active_referrals, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanProfile(row pgx.Row) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := row.Scan(
		&p.ID, &p.Login, &p.PasswordHash, &p.ReferralCode,
		&p.CurrentTier, &p.DailyCredits, &p.CreditsUsedToday,
		&p.TotalReferrals, &p.ActiveReferrals,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetByID(ctx context.Context, userID int) (*domain.UserProfile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM user_profiles
        WHERE id = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) GetByLogin(ctx context.Context, login string) (*domain.UserProfile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM user_profiles
        WHERE login = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user profile by login", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.UserProfile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM user_profiles
        WHERE referral_code = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user profile by referral code", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	query := `
        INSERT INTO user_profiles (login, password_hash, referral_code, current_tier, daily_credits)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		profile.Login, profile.PasswordHash, profile.ReferralCode,
		profile.CurrentTier, profile.DailyCredits,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save user profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// UpdateTierFields overwrites the cached referral counters and tier fields
// in one statement. credits_used_today is deliberately untouched.
func (r *Repository) UpdateTierFields(ctx context.Context, userID, totalReferrals, activeReferrals int, tier string, dailyCredits int) (*domain.UserProfile, error) {
	var updated *domain.UserProfile
	query := `
        UPDATE user_profiles
        SET total_referrals = $1, active_referrals = $2, current_tier = $3, daily_credits = $4, updated_at = now()
        WHERE id = $5
        RETURNING ` + profileColumns + `
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, totalReferrals, activeReferrals, tier, dailyCredits, userID)
		profile, err := scanProfile(row)
		if err != nil {
			zap.L().Error("failed to update tier fields", zap.Error(err))
			return err
		}
		updated = profile
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindForReconcile returns the user ids whose profiles were updated least
// recently, for the background repair sweep.
func (r *Repository) FindForReconcile(ctx context.Context, limit uint32) ([]int, error) {
	query := `
        SELECT id
        FROM user_profiles
        ORDER BY updated_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch profiles for reconcile", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan profile id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
