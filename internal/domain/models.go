package domain

import "time"

const (
	ReferralStatusPending = "pending"
	ReferralStatusActive  = "active"
)

type UserProfile struct {
	ID               int       `db:"id"`
	Login            string    `db:"login"`
	PasswordHash     string    `db:"password_hash"`
	ReferralCode     string    `db:"referral_code"`
	CurrentTier      string    `db:"current_tier"`
	DailyCredits     int       `db:"daily_credits"`
	CreditsUsedToday int       `db:"credits_used_today"`
	TotalReferrals   int       `db:"total_referrals"`
	ActiveReferrals  int       `db:"active_referrals"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Referral struct {
	ID           int        `db:"id"`
	ReferrerID   int        `db:"referrer_id"`
	RefereeID    int        `db:"referee_id"`
	ReferralCode string     `db:"referral_code"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	ActivatedAt  *time.Time `db:"activated_at"`
}

type CreditTransaction struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Amount      int       `db:"amount"`
	Service     string    `db:"service"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// ReferralStats partitions a referrer's rows by status. Rows with an
// unrecognized status count toward Total only, never Active.
type ReferralStats struct {
	Total  int `json:"totalReferrals"`
	Active int `json:"activeReferrals"`
}

// ConsumeResult mirrors one row returned by the consume_credits function.
// The function's answer is authoritative; callers must not re-derive the
// balance client-side.
type ConsumeResult struct {
	Success       bool
	NewBalance    int
	TransactionID int
	ErrorCode     string
}

// ProbeResult is the tri-state outcome of a capability probe against the
// store. Unknown is never collapsed into Present.
type ProbeResult int

const (
	ProbeUnknown ProbeResult = iota
	ProbePresent
	ProbeAbsent
)

func (p ProbeResult) String() string {
	switch p {
	case ProbePresent:
		return "present"
	case ProbeAbsent:
		return "absent"
	default:
		return "unknown"
	}
}
