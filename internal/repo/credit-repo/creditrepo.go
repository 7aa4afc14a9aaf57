package creditrepo

import (
	"context"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetHistory(ctx context.Context, userID, limit int) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, user_id, amount, service, description, created_at
        FROM credit_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch credit history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.CreditTransaction
	for rows.Next() {
		var tx domain.CreditTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Service, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan credit transaction row", zap.Error(err))
			return nil, err
		}
		history = append(history, tx)
	}

	return history, nil
}

// Consume calls the atomic consume_credits function. Balance check,
// counter bump and ledger insert happen as one unit on the store side; the
// returned row is authoritative.
func (r *Repository) Consume(ctx context.Context, userID, amount int, service, description string) (*domain.ConsumeResult, error) {
	query := `
        SELECT success, new_balance, transaction_id, error_code
        FROM consume_credits($1, $2, $3, $4)
    `
	var res domain.ConsumeResult
	err := r.db.QueryRow(ctx, query, userID, amount, service, description).
		Scan(&res.Success, &res.NewBalance, &res.TransactionID, &res.ErrorCode)
	if err != nil {
		zap.L().Error("consume_credits call failed", zap.Error(err))
		return nil, err
	}
	return &res, nil
}

// ProbeConsumeFunction checks pg_proc for the consume_credits function.
// A query failure yields Unknown, never Present.
func (r *Repository) ProbeConsumeFunction(ctx context.Context) domain.ProbeResult {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM pg_proc WHERE proname = 'consume_credits'
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query).Scan(&exists); err != nil {
		zap.L().Warn("consume_credits probe failed", zap.Error(err))
		return domain.ProbeUnknown
	}
	if exists {
		return domain.ProbePresent
	}
	return domain.ProbeAbsent
}
