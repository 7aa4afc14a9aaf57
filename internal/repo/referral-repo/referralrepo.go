package referralrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/pg"
	"go.uber.org/zap"
)

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

func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	query := `
        INSERT INTO referrals (referrer_id, referee_id, referral_code, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		referral.ReferrerID, referral.RefereeID, referral.ReferralCode, referral.Status,
	).Scan(&referral.ID, &referral.CreatedAt)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

func (r *Repository) GetByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referee_id, referral_code, status, created_at, activated_at
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.RefereeID, &ref.ReferralCode, &ref.Status, &ref.CreatedAt, &ref.ActivatedAt)
		if err != nil {
			zap.L().Error("failed to scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}

	return referrals, nil
}

// CountByReferrer aggregates referral rows live. Only status = 'active'
// counts as active; unrecognized statuses fall into the total only.
func (r *Repository) CountByReferrer(ctx context.Context, referrerID int) (*domain.ReferralStats, error) {
	query := `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
        FROM referrals
        WHERE referrer_id = $1
    `
	var stats domain.ReferralStats
	err := r.db.QueryRow(ctx, query, referrerID).Scan(&stats.Total, &stats.Active)
	if err != nil {
		zap.L().Error("failed to count referrals", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) GetPendingByReferee(ctx context.Context, refereeID int) (*domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referee_id, referral_code, status, created_at, activated_at
        FROM referrals
        WHERE referee_id = $1 AND status = 'pending'
    `
	var ref domain.Referral
	err := r.db.QueryRow(ctx, query, refereeID).
		Scan(&ref.ID, &ref.ReferrerID, &ref.RefereeID, &ref.ReferralCode, &ref.Status, &ref.CreatedAt, &ref.ActivatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get pending referral", zap.Error(err))
		return nil, err
	}
	return &ref, nil
}

// Activate flips a pending referral to active. A referral never returns to
// pending, so the guard makes the call idempotent.
func (r *Repository) Activate(ctx context.Context, referralID int) error {
	query := `
        UPDATE referrals
        SET status = 'active', activated_at = now()
        WHERE id = $1 AND status = 'pending'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, referralID); err != nil {
			zap.L().Error("failed to activate referral", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
