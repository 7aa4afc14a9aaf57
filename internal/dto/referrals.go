package dto

import (
	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
)

type ValidateCodeRequestDTO struct {
	Code string `json:"code" example:"1234567897"`
}

type ValidateCodeResponseDTO struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	Code    string `json:"code" example:"1234567897"`
}

type ReferralStatsResponseDTO struct {
	Success      bool                 `json:"success"`
	Stats        domain.ReferralStats `json:"stats"`
	TierProgress tiers.Progress       `json:"tierProgress"`
	ReferralCode string               `json:"referralCode" example:"1234567897"`
}

type ReconcileCheckDTO struct {
	Name    string `json:"name" example:"referral-count"`
	Outcome string `json:"outcome" example:"fail"`
	Detail  string `json:"detail,omitempty" example:"cached 2, derived 3"`
}

type ReconcileResponseDTO struct {
	Success bool                `json:"success"`
	Checks  []ReconcileCheckDTO `json:"checks"`
	Changed []string            `json:"changed"`
	Summary string              `json:"summary" example:"no issues detected"`
}
