package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/dto"
	reconcileservice "github.com/donyelqt/tarana-rewards/internal/service/reconcileservice"
	referralservice "github.com/donyelqt/tarana-rewards/internal/service/referralservice"
	"github.com/donyelqt/tarana-rewards/internal/tiers"
	"github.com/donyelqt/tarana-rewards/pkg/auth"
	"github.com/donyelqt/tarana-rewards/pkg/utils"
)

type Service interface {
	ValidateCode(ctx context.Context, code string) (bool, error)
	GetUserReferralCode(ctx context.Context, userID int) (string, error)
	GetStats(ctx context.Context, userID int) (*domain.ReferralStats, error)
	GetTierProgress(ctx context.Context, userID int) (*tiers.Progress, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, userID int) (*reconcileservice.Report, error)
}

type ReferralHandler struct {
	referralService Service
	reconciler      Reconciler
}

func New(referralService Service, reconciler Reconciler) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
		reconciler:      reconciler,
	}
}

// ValidateCode godoc
//
//	@Summary		Validate a referral code
//	@Description	Check whether a referral code belongs to an existing user. Unknown codes are a negative answer, not an error. No authentication required.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ValidateCodeRequestDTO	true	"Code to validate"
//	@Success		200		{object}	dto.ValidateCodeResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/validate [post]
func (h *ReferralHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "code is required")
		return
	}

	valid, err := h.referralService.ValidateCode(r.Context(), req.Code)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ValidateCodeResponseDTO{
		Success: true,
		Valid:   valid,
		Code:    req.Code,
	})
}

// GetStats godoc
//
//	@Summary		Get referral stats
//	@Description	Total and active referral counts (aggregated live from referral rows), tier progress and the caller's own referral code.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/stats [get]
func (h *ReferralHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	code, err := h.referralService.GetUserReferralCode(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	stats, err := h.referralService.GetStats(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	progress, err := h.referralService.GetTierProgress(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralStatsResponseDTO{
		Success:      true,
		Stats:        *stats,
		TierProgress: *progress,
		ReferralCode: code,
	})
}

// Reconcile godoc
//
//	@Summary		Repair cached referral counters
//	@Description	Recompute tier and counters from raw referral rows and overwrite the cached profile fields when they drifted. Idempotent; a second run reports no issues.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReconcileResponseDTO	"Check report"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Profile not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/referrals/reconcile [post]
func (h *ReferralHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	report, err := h.reconciler.Reconcile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, reconcileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	checks := make([]dto.ReconcileCheckDTO, len(report.Checks))
	for i, c := range report.Checks {
		checks[i] = dto.ReconcileCheckDTO{
			Name:    c.Name,
			Outcome: string(c.Outcome),
			Detail:  c.Detail,
		}
	}

	changed := report.Changed
	if changed == nil {
		changed = []string{}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReconcileResponseDTO{
		Success: true,
		Checks:  checks,
		Changed: changed,
		Summary: report.Summary,
	})
}

func (h *ReferralHandler) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, referralservice.ErrProfileNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
