package tiers

import (
	"context"
	"net/http"

	"github.com/donyelqt/tarana-rewards/internal/dto"
	tiercfg "github.com/donyelqt/tarana-rewards/internal/tiers"
	"github.com/donyelqt/tarana-rewards/pkg/auth"
	"github.com/donyelqt/tarana-rewards/pkg/utils"
)

type Service interface {
	AllTiers() []tiercfg.Config
	GetTierProgress(ctx context.Context, userID int) (*tiercfg.Progress, error)
}

type TierHandler struct {
	tierService Service
}

func New(tierService Service) *TierHandler {
	return &TierHandler{
		tierService: tierService,
	}
}

// GetAllTiers godoc
//
//	@Summary		List all tiers
//	@Description	The full tier catalog, ascending by referral threshold. No authentication required.
//	@Tags			Tiers
//	@Produce		json
//	@Success		200	{object}	dto.AllTiersResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tiers/all [get]
func (h *TierHandler) GetAllTiers(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.AllTiersResponseDTO{
		Success: true,
		Tiers:   h.tierService.AllTiers(),
	})
}

// GetCurrentTier godoc
//
//	@Summary		Get current tier
//	@Description	The authenticated user's tier, resolved live from their active referral count, with progress toward the next tier.
//	@Tags			Tiers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CurrentTierResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tiers/current [get]
func (h *TierHandler) GetCurrentTier(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	progress, err := h.tierService.GetTierProgress(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CurrentTierResponseDTO{
		Success:     true,
		CurrentTier: progress.Current.Name,
		Config:      &progress.Current,
		Progress:    *progress,
	})
}
