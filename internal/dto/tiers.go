package dto

import "github.com/donyelqt/tarana-rewards/internal/tiers"

type AllTiersResponseDTO struct {
	Success bool           `json:"success"`
	Tiers   []tiers.Config `json:"tiers"`
}

type CurrentTierResponseDTO struct {
	Success     bool           `json:"success"`
	CurrentTier string         `json:"currentTier" example:"Explorer"`
	Config      *tiers.Config  `json:"config"`
	Progress    tiers.Progress `json:"progress"`
}
